package dto

// CostingComponentInput references an inventory item and a quantity.
type CostingComponentInput struct {
	InventoryItemID string `json:"inventory_item_id" validate:"required,uuid"`
	Quantity        int64  `json:"quantity" validate:"required,min=1"`
}

// EstimateCostRequest asks for a manufacturing cost estimate.
type EstimateCostRequest struct {
	Components     []CostingComponentInput `json:"components" validate:"required,min=1,dive"`
	TargetTerm     int64                   `json:"target_term" validate:"min=0"`
	TargetCurrency string                  `json:"target_currency" validate:"required,oneof=TRY USD"`
}

// EstimateCostResponse carries both totals as 2-decimal strings.
// TotalCostTarget is denominated in the requested target currency.
type EstimateCostResponse struct {
	TotalCostTL     string `json:"total_cost_tl"`
	TotalCostTarget string `json:"total_cost_target"`
}
