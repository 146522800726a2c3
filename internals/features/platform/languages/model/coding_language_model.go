// file: internals/features/platform/languages/model/coding_language_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*
   Mirror dari SQL:

   - coding_language_id          UUID PK
   - coding_language_slug        VARCHAR(40) NOT NULL UNIQUE  (lowercase, mis. "javascript")
   - coding_language_name        VARCHAR(80) NOT NULL         (label UI, mis. "JavaScript")
   - coding_language_editor_key  VARCHAR(40) NULL             (key syntax highlighter)
   - coding_language_extensions  TEXT[] NOT NULL DEFAULT '{}' (mis. {.js,.jsx})
   - coding_language_is_active   BOOLEAN NOT NULL DEFAULT TRUE
   - created_at / updated_at
*/

type CodingLanguageModel struct {
	CodingLanguageID uuid.UUID `json:"coding_language_id" gorm:"column:coding_language_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CodingLanguageSlug       string         `json:"coding_language_slug" gorm:"column:coding_language_slug;type:varchar(40);not null;uniqueIndex"`
	CodingLanguageName       string         `json:"coding_language_name" gorm:"column:coding_language_name;type:varchar(80);not null"`
	CodingLanguageEditorKey  *string        `json:"coding_language_editor_key,omitempty" gorm:"column:coding_language_editor_key;type:varchar(40)"`
	CodingLanguageExtensions pq.StringArray `json:"coding_language_extensions" gorm:"column:coding_language_extensions;type:text[]"`

	CodingLanguageIsActive bool `json:"coding_language_is_active" gorm:"column:coding_language_is_active;not null;default:true"`

	CodingLanguageCreatedAt time.Time `json:"coding_language_created_at" gorm:"column:coding_language_created_at;type:timestamptz;not null;default:now()"`
	CodingLanguageUpdatedAt time.Time `json:"coding_language_updated_at" gorm:"column:coding_language_updated_at;type:timestamptz;not null;default:now()"`
}

func (CodingLanguageModel) TableName() string { return "coding_languages" }

func (m *CodingLanguageModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	m.CodingLanguageCreatedAt = now
	m.CodingLanguageUpdatedAt = now
	return nil
}

func (m *CodingLanguageModel) BeforeUpdate(tx *gorm.DB) error {
	m.CodingLanguageUpdatedAt = time.Now().UTC()
	return nil
}
