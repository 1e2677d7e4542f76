package proposal

const (
	AcceptedNo  int16 = 0
	AcceptedYes int16 = 1
)

// Proposal is a candidate rider's bid to join a carpool. Accepted is
// tri-state: nil (pending), 0 (declined), 1 (accepted). Cost and
// separation are client-supplied metrics; this service stores them but
// computes neither.
type Proposal struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"column:uid;not null;index"`
	CarpoolID  uint    `gorm:"column:cid;not null;index"`
	Accepted   *int16  `gorm:"column:accepted"`
	Cost       float64 `gorm:"not null"`
	Separation int     `gorm:"not null;default:0"`
}

func (p Proposal) IsAccepted() bool {
	return p.Accepted != nil && *p.Accepted == AcceptedYes
}

type CreateInput struct {
	UserID     uint
	CarpoolID  uint
	Cost       float64
	Separation int
}
