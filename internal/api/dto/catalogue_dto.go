package dto

import "trustcam_backend/internal/service"

// CatalogueResp is the catalogue page payload.
type CatalogueResp struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    *service.CatalogueView `json:"data"`
}

// CategoryTreeResp is the roots-with-children category tree.
type CategoryTreeResp struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Data    []service.SidebarRoot `json:"data"`
}
