package requesttype

type RequestTypeResponse struct {
	ID               string   `json:"id"`
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	RequiresApproval bool     `json:"requires_approval"`
	IsActive         bool     `json:"is_active"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func mapToResponse(rt RequestType) RequestTypeResponse {
	return RequestTypeResponse{
		ID:               rt.ID.String(),
		Code:             rt.Code,
		Name:             rt.Name,
		Category:         rt.Category,
		RequiresApproval: rt.RequiresApproval,
		IsActive:         rt.IsActive,
	}
}

func mapToListResponse(types []RequestType) []RequestTypeResponse {
	resp := make([]RequestTypeResponse, len(types))
	for i, rt := range types {
		resp[i] = mapToResponse(rt)
	}
	return resp
}
