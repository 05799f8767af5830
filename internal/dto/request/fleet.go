package request

type CreateSpaceshipTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type UpdateSpaceshipTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreateCrewRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=150"`
	LastName  string `json:"last_name" validate:"required,min=1,max=150"`
}

type UpdateCrewRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=150"`
	LastName  string `json:"last_name" validate:"required,min=1,max=150"`
}

type CreateSpaceshipRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=255"`
	Rows       int      `json:"rows" validate:"required,gt=0"`
	SeatsInRow int      `json:"seats_in_row" validate:"required,gt=0"`
	TypeID     string   `json:"type_id" validate:"required,uuid4"`
	CrewIDs    []string `json:"crew_ids" validate:"omitempty,dive,uuid4"`
}

// UpdateSpaceshipRequest deliberately has no seat geometry fields: rows
// and seats_in_row are fixed at creation.
type UpdateSpaceshipRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=255"`
	TypeID string `json:"type_id" validate:"required,uuid4"`
}

type AssignCrewsRequest struct {
	CrewIDs []string `json:"crew_ids" validate:"required,dive,uuid4"`
}
