package leavetype

type LeaveTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type LeaveTypesResponse struct {
	LeaveTypes []LeaveTypeResponse `json:"leave_types"`
}
