package carpool

import "time"

type Carpool struct {
	ID          uint      `gorm:"primaryKey"`
	Capacity    int       `gorm:"not null"`
	Origin      int       `gorm:"not null"`
	Destination int       `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Depart      string    `gorm:"column:tdepart;size:8;not null"`
	Arrive      string    `gorm:"column:tarrive;size:8;not null"`
	OrganiserID uint      `gorm:"not null;index"`
	State       int       `gorm:"not null;default:0"`
	Occupancy   int       `gorm:"not null;default:0"`
	Roundtrip   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Intermediary associates a user with a carpool they organise or ride in.
type Intermediary struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"column:uid;not null;index"`
	CarpoolID uint `gorm:"column:cid;not null;index"`
}

func (Intermediary) TableName() string {
	return "intermediaries"
}

// Detail is a carpool with its organiser's name already resolved,
// produced by a single join rather than a lookup per row.
type Detail struct {
	Carpool
	OrganiserName string
}

type CreateInput struct {
	Capacity    int
	Origin      int
	Destination int
	Date        time.Time
	Depart      string
	Arrive      string
	OrganiserID uint
	State       int
	Roundtrip   bool
}
