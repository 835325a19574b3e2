// Package models holds the value types shared across the site.
package models

import "time"

// Project is one GitHub repository as shown on the site. Optional string
// fields use "" for absent and are omitted from JSON; Stars defaults to 0
// and UpdatedAt to the zero time when GitHub does not report them.
type Project struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	Homepage      string    `json:"homepage,omitempty"`
	Topics        []string  `json:"topics"`
	Language      string    `json:"language,omitempty"`
	Stars         int       `json:"stars"`
	ReadmePreview string    `json:"readme_preview,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Certification struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	Logo          string `json:"logo,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}
