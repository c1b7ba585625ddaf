package github

import "time"

// Object is a decoded JSON object as returned by the API.
type Object map[string]any

// Repo is the typed view of a repository record used by the cache and UI.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	License     string `json:"license"`
	HTMLURL     string `json:"html_url"`
}

type CachedOrg struct {
	Org      string    `json:"org"`
	Repos    []Repo    `json:"repos"`
	CachedAt time.Time `json:"cached_at"`
	TTL      string    `json:"ttl"`
}

// RepoFromRecord builds a Repo from a raw repository record. Missing or
// mistyped fields are left empty.
func RepoFromRecord(record Object) Repo {
	repo := Repo{
		Name:        stringField(record, "name"),
		FullName:    stringField(record, "full_name"),
		Description: stringField(record, "description"),
		HTMLURL:     stringField(record, "html_url"),
	}
	if license, ok := record["license"].(map[string]any); ok {
		repo.License = stringField(license, "key")
	}
	return repo
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
