package models

import "encoding/json"

// RawPosting is the envelope delivered on the wire for one posting: the
// source tag plus the source-shaped payload, left opaque until the
// normalizer picks the parser for that source. The payload is never
// mutated.
type RawPosting struct {
	Source  Source          `json:"source"`
	Payload json.RawMessage `json:"payload"`
}

// FranceTravailPosting mirrors the government API object, nested
// sub-objects included. Fields absent from a given offer unmarshal to
// their zero values.
type FranceTravailPosting struct {
	ID              string `json:"id"`
	Intitule        string `json:"intitule"`
	Description     string `json:"description"`
	TypeContrat     string `json:"typeContrat"`
	TypeContratLib  string `json:"typeContratLibelle"`
	ExperienceLib   string `json:"experienceLibelle"`
	DureeTravailLib string `json:"dureeTravailLibelle"`
	DateCreation    string `json:"dateCreation"`
	LieuTravail     struct {
		Libelle    string `json:"libelle"`
		CodePostal string `json:"codePostal"`
		Commune    string `json:"commune"`
	} `json:"lieuTravail"`
	Salaire struct {
		Libelle    string `json:"libelle"`
		Complement string `json:"complement1"`
	} `json:"salaire"`
	Entreprise struct {
		Nom string `json:"nom"`
	} `json:"entreprise"`
}

// WelcomeJunglePosting mirrors the flat shape produced by the job-board
// scraper.
type WelcomeJunglePosting struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	ContractType string `json:"contract_type"`
	Salary       string `json:"salary"`
	Experience   string `json:"experience"`
	Description  string `json:"description"`
	PublishedAt  string `json:"published_at"`
}
