package branch

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

// BranchResponse represents the response structure for a branch.
type BranchResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Address  string        `json:"address,omitempty"`
	Location *geo.Location `json:"location,omitempty"`
}

func ToResponse(b Branch) BranchResponse {
	return BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address, Location: b.Location}
}

// CreateBranchRequest represents the request structure for creating a branch.
type CreateBranchRequest struct {
	Name     string        `json:"name"`
	Address  string        `json:"address,omitempty"`
	Location *geo.Location `json:"location,omitempty"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// Location
	if r.Location != nil && !r.Location.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateBranchRequest represents the request structure for updating a branch.
// Renaming does not touch employees that reference the old name.
type UpdateBranchRequest struct {
	ID       string        `json:"-"`
	Name     *string       `json:"name,omitempty"`
	Address  *string       `json:"address,omitempty"`
	Location *geo.Location `json:"location,omitempty"`
}

func (r *UpdateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	// Location
	if r.Location != nil && !r.Location.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
