package models

import "strings"

// Complaint records one subscriber's grievance against another. Both
// names are resolved from the subscriber service when the complaint is
// filed.
type Complaint struct {
	ID       int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ImeVir   string `gorm:"type:char(25)" json:"ime_vir"`
	ImeCilj  string `gorm:"type:char(25)" json:"ime_cilj"`
	Pritozba string `gorm:"type:char(300)" json:"pritozba"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// Trimmed returns a copy with the fixed-width column padding removed.
func (c Complaint) Trimmed() Complaint {
	c.ImeVir = strings.TrimSpace(c.ImeVir)
	c.ImeCilj = strings.TrimSpace(c.ImeCilj)
	c.Pritozba = strings.TrimSpace(c.Pritozba)
	return c
}

// ComplaintRequest is the POST /complaints body. The source subscriber is
// resolved first, then the target; a failed lookup aborts the create.
type ComplaintRequest struct {
	ID        int    `json:"id"`
	SourceID  int    `json:"source_id"`
	TargetID  int    `json:"target_id"`
	Complaint string `json:"complaint"`
}
