package erptest

// JSON schemas for the collections the mock backend validates. They mirror
// the backend's payload contracts: identity fields are server-assigned and
// therefore absent.

// AnsattSchema validates employee payloads.
const AnsattSchema = `{
	"type": "object",
	"required": ["fornavn", "etternavn"],
	"properties": {
		"fornavn":   {"type": "string", "minLength": 1},
		"etternavn": {"type": "string", "minLength": 1},
		"epost":     {"type": "string"},
		"telefon":   {"type": "string"},
		"aktiv":     {"type": "boolean"}
	},
	"additionalProperties": false
}`

// ProduktSchema validates product payloads.
const ProduktSchema = `{
	"type": "object",
	"required": ["navn", "pris"],
	"properties": {
		"navn":      {"type": "string", "minLength": 1},
		"enhet":     {"type": "string"},
		"pris":      {"type": "number", "minimum": 0},
		"gruppe_id": {"type": "integer"},
		"aktiv":     {"type": "boolean"}
	},
	"additionalProperties": false
}`

// KundeSchema validates customer payloads.
const KundeSchema = `{
	"type": "object",
	"required": ["navn"],
	"properties": {
		"navn":      {"type": "string", "minLength": 1},
		"orgnummer": {"type": "string"},
		"epost":     {"type": "string"},
		"telefon":   {"type": "string"},
		"adresse":   {"type": "string"}
	},
	"additionalProperties": false
}`
