// file: internals/features/workspace/files/model/workspace_file_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceFileModel adalah mirror read-only tabel workspace_files milik
// layanan workspace eksternal. Upload & manajemen file terjadi di sana;
// engine live session hanya me-resolve nama + isi untuk scratchpad/broadcast.
type WorkspaceFileModel struct {
	WorkspaceFileID      uuid.UUID `json:"workspace_file_id" gorm:"column:workspace_file_id;type:uuid;primaryKey"`
	WorkspaceFileOwnerID uuid.UUID `json:"workspace_file_owner_id" gorm:"column:workspace_file_owner_id;type:uuid;not null"`
	WorkspaceFileName    string    `json:"workspace_file_name" gorm:"column:workspace_file_name;type:varchar(255);not null"`
	WorkspaceFileContent string    `json:"workspace_file_content" gorm:"column:workspace_file_content;type:text;not null;default:''"`

	WorkspaceFileCreatedAt time.Time `json:"workspace_file_created_at" gorm:"column:workspace_file_created_at;type:timestamptz;not null;default:now()"`
	WorkspaceFileUpdatedAt time.Time `json:"workspace_file_updated_at" gorm:"column:workspace_file_updated_at;type:timestamptz;not null;default:now()"`
}

func (WorkspaceFileModel) TableName() string { return "workspace_files" }
