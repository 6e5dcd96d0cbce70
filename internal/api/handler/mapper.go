package handler

import (
	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// --- Domain / service result → HTTP response ---

func toIdentityResponse(id *domain.Identity) identityResponse {
	return identityResponse{
		ID:    id.ID,
		Name:  id.Name,
		Email: id.Email,
		Role:  id.Role,
	}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:        p.ID,
		ClientID:  p.ClientID,
		Name:      p.Name,
		Location:  p.Location,
		Status:    string(p.Status),
		StartDate: p.StartDate,
		Progress:  p.Progress,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func toDashboardResponse(view *ports.DashboardView) dashboardResponse {
	resp := dashboardResponse{State: string(view.State)}

	switch view.State {
	case ports.AdminView:
		projects := make([]projectResponse, 0, len(view.Admin.Projects))
		for i := range view.Admin.Projects {
			projects = append(projects, toProjectResponse(&view.Admin.Projects[i]))
		}
		resp.Admin = &adminDashboardResponse{Projects: projects, Total: len(projects)}

	case ports.ClientView:
		client := &clientDashboardResponse{
			Stages:           make([]stageResponse, 0, len(view.Client.Stages)),
			Payments:         make([]paymentResponse, 0, len(view.Client.Payments)),
			StageWeightTotal: domain.StageWeightTotal(view.Client.Stages),
		}
		p := toProjectResponse(view.Client.Project)
		client.Project = &p
		for _, st := range view.Client.Stages {
			client.Stages = append(client.Stages, stageResponse{
				ID:         st.ID,
				Name:       st.Name,
				Percentage: st.Percentage,
				Completed:  st.Completed,
			})
		}
		for _, pay := range view.Client.Payments {
			client.Payments = append(client.Payments, paymentResponse{
				ID:        pay.ID,
				Amount:    pay.Amount,
				Status:    string(pay.Status),
				Date:      pay.Date,
				Milestone: pay.Milestone,
			})
		}
		resp.Client = client

	case ports.ClientViewEmpty:
		resp.Client = &clientDashboardResponse{
			Stages:   []stageResponse{},
			Payments: []paymentResponse{},
		}
	}

	return resp
}
