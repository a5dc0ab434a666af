package employee

import (
	"go-leave/internal/domain"

	"github.com/google/uuid"
)

// Profile is what leave routing needs to know about an employee.
type Profile struct {
	ID            uuid.UUID
	FullName      string
	Department    string
	LineManagerID domain.Optional[uuid.UUID]
}

type ProfileResponse struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Department    string `json:"department"`
	LineManagerID string `json:"line_manager_id,omitempty"`
}

func toProfile(e *Employee) Profile {
	p := Profile{ID: e.ID, FullName: e.FullName, Department: e.Department}
	if e.LineManagerID.Valid {
		p.LineManagerID = domain.Some(e.LineManagerID.UUID)
	}
	return p
}

func (p Profile) Response() ProfileResponse {
	resp := ProfileResponse{ID: p.ID.String(), FullName: p.FullName, Department: p.Department}
	if id, ok := p.LineManagerID.Get(); ok {
		resp.LineManagerID = id.String()
	}
	return resp
}
