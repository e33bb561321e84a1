package service

import (
	"context"
	"errors"
	"fmt"

	"panel/internal/i18n"
	"panel/internal/subuser/models"
	dErrors "panel/pkg/domain-errors"
)

// PermissionService creates permission rows for a subuser from a list of
// requested names.
type PermissionService struct {
	writer     PermissionWriter
	catalog    models.Catalog
	translator Translator
}

// NewPermissionService constructs a PermissionService. A nil catalog means
// models.DefaultCatalog; a nil translator means English messages.
func NewPermissionService(writer PermissionWriter, catalog models.Catalog, translator Translator) (*PermissionService, error) {
	if writer == nil {
		return nil, errors.New("permission writer is required")
	}
	if catalog == nil {
		catalog = models.DefaultCatalog
	}
	if translator == nil {
		tr, err := i18n.New("en")
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		translator = tr
	}
	return &PermissionService{writer: writer, catalog: catalog, translator: translator}, nil
}

// Create trims and de-duplicates names, rejects any name outside the catalog
// and inserts the rest. An empty list is valid and writes nothing.
func (p *PermissionService) Create(ctx context.Context, subuserID int64, names []string) error {
	names = models.NormalizePermissions(names)
	if len(names) == 0 {
		return nil
	}
	if err := p.catalog.Validate(names); err != nil {
		var invalid *models.InvalidPermissionError
		if !errors.As(err, &invalid) {
			return fmt.Errorf("validate permissions: %w", err)
		}
		return dErrors.Wrap(err, dErrors.CodeValidation,
			p.translator.T(i18n.InvalidPermission, map[string]any{"Permission": invalid.Name}))
	}
	if err := p.writer.InsertMany(ctx, subuserID, names); err != nil {
		return fmt.Errorf("insert permissions: %w", err)
	}
	return nil
}
