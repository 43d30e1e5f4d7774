// Package docrepo implements the typed repositories on top of the generic
// document store.
package docrepo

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/docstore"
)

func toDoc(v any) (docstore.Doc, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc docstore.Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

func fromDoc(doc docstore.Doc, dst any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func byID(id uuid.UUID) docstore.Filter {
	return docstore.Filter{"id": id.String()}
}
