// file: internals/features/platform/languages/dto/coding_language_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kodingku_backend/internals/features/platform/languages/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateCodingLanguageRequest struct {
	CodingLanguageSlug       string   `json:"coding_language_slug" validate:"required,min=1,max=40,lowercase"`
	CodingLanguageName       string   `json:"coding_language_name" validate:"required,min=1,max=80"`
	CodingLanguageEditorKey  *string  `json:"coding_language_editor_key" validate:"omitempty,max=40"`
	CodingLanguageExtensions []string `json:"coding_language_extensions" validate:"omitempty,dive,startswith=."`
	CodingLanguageIsActive   *bool    `json:"coding_language_is_active"`
}

type UpdateCodingLanguageRequest struct {
	CodingLanguageName       *string  `json:"coding_language_name" validate:"omitempty,min=1,max=80"`
	CodingLanguageEditorKey  *string  `json:"coding_language_editor_key" validate:"omitempty,max=40"`
	CodingLanguageExtensions []string `json:"coding_language_extensions" validate:"omitempty,dive,startswith=."`
	CodingLanguageIsActive   *bool    `json:"coding_language_is_active"`
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type CodingLanguageResponse struct {
	CodingLanguageID         uuid.UUID `json:"coding_language_id"`
	CodingLanguageSlug       string    `json:"coding_language_slug"`
	CodingLanguageName       string    `json:"coding_language_name"`
	CodingLanguageEditorKey  *string   `json:"coding_language_editor_key,omitempty"`
	CodingLanguageExtensions []string  `json:"coding_language_extensions"`
	CodingLanguageIsActive   bool      `json:"coding_language_is_active"`
	CodingLanguageCreatedAt  time.Time `json:"coding_language_created_at"`
	CodingLanguageUpdatedAt  time.Time `json:"coding_language_updated_at"`
}

/* =========================================================
   MAPPERS
   ========================================================= */

func (r *CreateCodingLanguageRequest) ToModel() *model.CodingLanguageModel {
	m := &model.CodingLanguageModel{
		CodingLanguageSlug:       strings.ToLower(strings.TrimSpace(r.CodingLanguageSlug)),
		CodingLanguageName:       strings.TrimSpace(r.CodingLanguageName),
		CodingLanguageEditorKey:  r.CodingLanguageEditorKey,
		CodingLanguageExtensions: normalizeExtensions(r.CodingLanguageExtensions),
		CodingLanguageIsActive:   true,
	}
	if r.CodingLanguageIsActive != nil {
		m.CodingLanguageIsActive = *r.CodingLanguageIsActive
	}
	return m
}

func ApplyCodingLanguageUpdate(m *model.CodingLanguageModel, req *UpdateCodingLanguageRequest) {
	if req.CodingLanguageName != nil {
		m.CodingLanguageName = strings.TrimSpace(*req.CodingLanguageName)
	}
	if req.CodingLanguageEditorKey != nil {
		m.CodingLanguageEditorKey = req.CodingLanguageEditorKey
	}
	if req.CodingLanguageExtensions != nil {
		m.CodingLanguageExtensions = normalizeExtensions(req.CodingLanguageExtensions)
	}
	if req.CodingLanguageIsActive != nil {
		m.CodingLanguageIsActive = *req.CodingLanguageIsActive
	}
}

func ToCodingLanguageResponse(m *model.CodingLanguageModel) *CodingLanguageResponse {
	if m == nil {
		return nil
	}
	return &CodingLanguageResponse{
		CodingLanguageID:         m.CodingLanguageID,
		CodingLanguageSlug:       m.CodingLanguageSlug,
		CodingLanguageName:       m.CodingLanguageName,
		CodingLanguageEditorKey:  m.CodingLanguageEditorKey,
		CodingLanguageExtensions: append([]string(nil), m.CodingLanguageExtensions...),
		CodingLanguageIsActive:   m.CodingLanguageIsActive,
		CodingLanguageCreatedAt:  m.CodingLanguageCreatedAt,
		CodingLanguageUpdatedAt:  m.CodingLanguageUpdatedAt,
	}
}

func ToCodingLanguageResponses(ms []model.CodingLanguageModel) []CodingLanguageResponse {
	out := make([]CodingLanguageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToCodingLanguageResponse(&ms[i]))
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
