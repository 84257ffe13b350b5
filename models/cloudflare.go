package models

import (
	"fmt"
	"sort"
	"time"
)

// Account is the Cloudflare account a credential resolves to.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// TokenStatus is the status reported by the token verification endpoint
	// (e.g. "active").
	TokenStatus string `json:"-"`
}

// Script is a Workers script as listed by the remote platform.
type Script struct {
	ID         string    `json:"id"`
	ETag       string    `json:"etag,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`
}

// BindingType names a runtime resource kind attached to a script.
type BindingType string

const (
	BindingPlainText   BindingType = "plain_text"
	BindingKVNamespace BindingType = "kv_namespace"
)

// Binding is one entry of the "bindings" array in the upload metadata part.
type Binding struct {
	Name        string      `json:"name"`
	Type        BindingType `json:"type"`
	Text        string      `json:"text,omitempty"`
	NamespaceID string      `json:"namespace_id,omitempty"`
}

// ScriptUpload describes a create-or-replace of one script.
type ScriptUpload struct {
	Name     string
	Content  string
	Bindings []Binding
}

// Deployment is the result of a successful upload.
type Deployment struct {
	Name   string
	URL    string
	Script Script
}

// WorkerURL synthesizes the public address of a deployed script.
func WorkerURL(name, accountID string) string {
	return fmt.Sprintf("https://%s.%s.workers.dev", name, accountID)
}

// BindingsFromConfig converts plain text variables and KV namespace bindings
// (binding name to namespace id) into upload bindings. The result is sorted
// by type then name so that uploads are reproducible.
func BindingsFromConfig(vars map[string]string, kvNamespaces map[string]string) []Binding {
	bindings := make([]Binding, 0, len(vars)+len(kvNamespaces))

	for name, text := range vars {
		bindings = append(bindings, Binding{Name: name, Type: BindingPlainText, Text: text})
	}
	for name, id := range kvNamespaces {
		bindings = append(bindings, Binding{Name: name, Type: BindingKVNamespace, NamespaceID: id})
	}

	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Type != bindings[j].Type {
			return bindings[i].Type > bindings[j].Type
		}
		return bindings[i].Name < bindings[j].Name
	})

	return bindings
}
