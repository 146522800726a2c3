package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users milik layanan auth eksternal.
// Engine ini hanya MEMBACA: registrasi, login, dan mutasi profil terjadi
// di luar repo ini.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name"`
	FullName *string   `gorm:"size:100" json:"full_name,omitempty"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	// Fakta gerbang akses (lihat kalkulator status akses)
	IsAdmissionConfirmed   *bool      `gorm:"column:is_admission_confirmed" json:"is_admission_confirmed,omitempty"`
	TrialEndDate           *time.Time `gorm:"column:trial_end_date;type:timestamptz" json:"trial_end_date,omitempty"`
	TemporaryAccessGranted *bool      `gorm:"column:temporary_access_granted" json:"temporary_access_granted,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// DisplayName memilih nama tampilan untuk scratchpad & daftar peserta.
func (u *UserModel) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.UserName
}

// AdmissionConfirmed membaca flag admission dengan default false.
func (u *UserModel) AdmissionConfirmed() bool {
	return u.IsAdmissionConfirmed != nil && *u.IsAdmissionConfirmed
}

// TemporaryAccess membaca flag override akses manual dengan default false.
func (u *UserModel) TemporaryAccess() bool {
	return u.TemporaryAccessGranted != nil && *u.TemporaryAccessGranted
}
