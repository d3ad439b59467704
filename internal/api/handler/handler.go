package handler

import "turnusplan/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth      *AuthHandler
	Org       *OrgHandler
	Employee  *EmployeeHandler
	Interpret *InterpretHandler
	Schedule  *ScheduleHandler
	System    *SystemHandler
}

// NewHandler wires the handlers onto the service aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Org:       NewOrgHandler(svc.Org),
		Employee:  NewEmployeeHandler(svc.Employee),
		Interpret: NewInterpretHandler(svc.Interpret),
		Schedule:  NewScheduleHandler(svc.Schedule, svc.Export),
		System:    NewSystemHandler(svc.Diagnostics),
	}
}
