package belboard

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// seedSchema guards the seed file boundary: files are operator-supplied,
// so shape errors surface here with a schema path instead of as zero
// values deep inside a view.
const seedSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["user_profile", "leaderboard"],
  "properties": {
    "user_profile": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "email": {"type": "string"},
        "role": {"type": "string"}
      }
    },
    "notifications": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "type": {"type": "string"},
          "tag_text": {"type": "string"},
          "title": {"type": "string", "minLength": 1},
          "date": {"type": "string"},
          "details": {"type": "string"}
        }
      }
    },
    "summary_stats": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "value"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "value": {"type": "string"},
          "trend": {"type": "string"},
          "trend_text": {"type": "string"},
          "status": {"type": "string"}
        }
      }
    },
    "leaderboard": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "tier"],
        "properties": {
          "id": {"type": "string", "pattern": "^K[A-Z]{2}"},
          "name": {"type": "string", "minLength": 1},
          "email": {"type": "string"},
          "tier": {"type": "string", "enum": ["Builder", "Enabler", "Explorer", "Leader"]},
          "clicks": {"type": "integer", "minimum": 0},
          "orders": {"type": "integer", "minimum": 0},
          "revenue": {"type": "number", "minimum": 0}
        }
      }
    },
    "payouts": {
      "type": "object",
      "properties": {
        "payout_day_message": {"type": "string"},
        "history": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["date"],
            "properties": {
              "date": {"type": "string", "minLength": 1},
              "total": {"type": "number", "minimum": 0},
              "bel_count": {"type": "integer", "minimum": 0},
              "details": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["payout_id", "referral_id"],
                  "properties": {
                    "payout_id": {"type": "string", "minLength": 1},
                    "referral_id": {"type": "string", "minLength": 1},
                    "bel_name": {"type": "string"},
                    "gross": {"type": "number"},
                    "fees": {"type": "number"},
                    "tax": {"type": "number"},
                    "net": {"type": "number"},
                    "paid": {"type": "boolean"},
                    "status": {"type": "string"}
                  }
                }
              }
            }
          }
        }
      }
    },
    "orders": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["order_number"],
        "properties": {
          "order_date": {"type": "string"},
          "order_number": {"type": "string", "minLength": 1},
          "referral_id": {"type": "string"},
          "bel_name": {"type": "string"},
          "amount": {"type": "number"},
          "currency": {"type": "string"},
          "status": {"type": "string"}
        }
      }
    },
    "assets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "category", "page_link"],
        "properties": {
          "upload_date": {"type": "string"},
          "title": {"type": "string", "minLength": 1},
          "subtitle": {"type": "string"},
          "category": {"type": "string", "minLength": 1},
          "page_link": {"type": "string", "minLength": 1},
          "picture": {"type": ["object", "null"]}
        }
      }
    },
    "tickets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["ticket_number", "status"],
        "properties": {
          "ticket_number": {"type": "string", "minLength": 1},
          "referral_id": {"type": "string"},
          "bel_name": {"type": "string"},
          "subject": {"type": "string"},
          "status": {"type": "string", "enum": ["Open", "Replied", "Resolved", "Closed"]},
          "created": {"type": "string"},
          "message": {"type": "string"},
          "replies": {"type": "array"}
        }
      }
    },
    "announcements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "created": {"type": "string"},
          "category": {"type": "string"},
          "title": {"type": "string", "minLength": 1},
          "body": {"type": "string"},
          "link": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compiledSeedSchema     *jsonschema.Schema
	compileSeedSchemaOnce  sync.Once
	compileSeedSchemaError error
)

func seedSchemaCompiled() (*jsonschema.Schema, error) {
	compileSeedSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("seed.json", strings.NewReader(seedSchema)); err != nil {
			compileSeedSchemaError = fmt.Errorf("belboard: load seed schema: %w", err)
			return
		}
		compiledSeedSchema, compileSeedSchemaError = compiler.Compile("seed.json")
		if compileSeedSchemaError != nil {
			compileSeedSchemaError = fmt.Errorf("belboard: compile seed schema: %w", compileSeedSchemaError)
		}
	})
	return compiledSeedSchema, compileSeedSchemaError
}

// ReadSeedFile loads and validates a seed file from disk.
func ReadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("belboard: open seed %s: %w", path, err)
	}
	defer f.Close()
	seed, err := DecodeSeed(f)
	if err != nil {
		return nil, fmt.Errorf("belboard: decode seed %s: %w", path, err)
	}
	return seed, nil
}

// DecodeSeed reads a YAML seed document from any reader. Unknown fields
// are rejected so a typoed key fails loudly instead of silently dropping
// a collection, and the document is schema-checked before it is trusted.
func DecodeSeed(r io.Reader) (*Seed, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var seed Seed
	if err := decoder.Decode(&seed); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("belboard: seed document is empty")
		}
		return nil, fmt.Errorf("belboard: parse seed: %w", err)
	}
	if err := ValidateSeed(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// ValidateSeed checks a decoded seed against the document schema.
func ValidateSeed(seed *Seed) error {
	if seed == nil {
		return fmt.Errorf("belboard: seed document is nil")
	}
	schema, err := seedSchemaCompiled()
	if err != nil {
		return err
	}
	data, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("belboard: marshal seed for validation: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("belboard: normalize seed for validation: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("belboard: seed failed validation: %w", err)
	}
	return nil
}
