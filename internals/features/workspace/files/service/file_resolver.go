// file: internals/features/workspace/files/service/file_resolver.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	fileModel "kodingku_backend/internals/features/workspace/files/model"
)

// ResolvedWorkspaceFile adalah potongan file yang dibutuhkan sesi live.
type ResolvedWorkspaceFile struct {
	ID      uuid.UUID
	Name    string
	Content string
}

// FileResolver dipisah sebagai interface supaya service sesi live bisa
// dites tanpa database.
type FileResolver interface {
	ResolveWorkspaceFile(id uuid.UUID) *ResolvedWorkspaceFile
}

type GormFileResolver struct {
	DB *gorm.DB
}

func NewGormFileResolver(db *gorm.DB) *GormFileResolver {
	return &GormFileResolver{DB: db}
}

// ResolveWorkspaceFile mengambil nama + isi file.
// File hilang atau query gagal DITOLERANSI: balikan nil, penulisan scratchpad
// jatuh ke code/language yang dikirim caller.
func (r *GormFileResolver) ResolveWorkspaceFile(id uuid.UUID) *ResolvedWorkspaceFile {
	var m fileModel.WorkspaceFileModel
	if err := r.DB.First(&m, "workspace_file_id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] resolve workspace file %s gagal: %v", id, err)
		}
		return nil
	}
	return &ResolvedWorkspaceFile{
		ID:      m.WorkspaceFileID,
		Name:    m.WorkspaceFileName,
		Content: m.WorkspaceFileContent,
	}
}
