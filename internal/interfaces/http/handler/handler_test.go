package handler

import (
	"context"
	"errors"
	"html/template"
	"io"

	"github.com/gin-gonic/gin"

	appinventory "github.com/storemap/backend/internal/application/inventory"
	"github.com/storemap/backend/internal/domain/inventory"
	"github.com/storemap/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// memStore is an in-memory inventory.Store for handler tests.
type memStore struct {
	doc     *inventory.Inventory
	loadErr error
	saveErr error
}

func (m *memStore) Load(ctx context.Context) (*inventory.Inventory, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	cp := *m.doc
	return &cp, nil
}

func (m *memStore) Save(ctx context.Context, doc *inventory.Inventory) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = doc
	return nil
}

// fakeLogoStorage records saves and serves a fixed URL.
type fakeLogoStorage struct {
	savedExt string
	saveErr  error
	url      string
}

func (f *fakeLogoStorage) Save(ctx context.Context, r io.Reader, ext string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return err
	}
	f.savedExt = ext
	return nil
}

func (f *fakeLogoStorage) URL(ctx context.Context) string {
	return f.url
}

func testInventory() *inventory.Inventory {
	return &inventory.Inventory{
		Map: inventory.MapConfig{Width: 4, Height: 3},
		Items: []inventory.Item{
			{SKU: "RICE-1", Name: "Arroz", Category: "Grocery", Quantity: 5, X: 0, Y: 0},
			{SKU: "SOAP-1", Name: "Sabonete", Category: "Hygiene", Quantity: 40, X: 2, Y: 1},
		},
		Zones: []inventory.Zone{
			{X: 0, Y: 0, Width: 2, Height: 3, Label: "Mercearia"},
		},
		Aisles: []string{"Mercearia", "Higiene"},
	}
}

func newTestService(store *memStore) *appinventory.Service {
	return appinventory.NewService(store, "")
}

var errBoom = errors.New("boom")

// testTemplates defines minimal templates for the HTML pages.
var testTemplates = template.Must(template.New("t").Parse(`
{{define "index.html"}}index view={{.View.ViewMode}} items={{len .View.Items}}{{end}}
{{define "admin.html"}}admin saved={{.Saved}} doc={{.Document}}{{end}}
{{define "upload.html"}}upload error={{.Error}}{{end}}
`))

func newTestEngine() *gin.Engine {
	engine := gin.New()
	engine.SetHTMLTemplate(testTemplates)
	return engine
}
