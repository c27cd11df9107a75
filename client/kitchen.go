package client

import "github.com/lumina-dine/table-order/models"

// KitchenColumns buckets active orders into the four kitchen display lanes.
// ARCHIVED orders stay queryable server-side but are operationally invisible
// here.
type KitchenColumns struct {
	Pending   []models.Order
	Preparing []models.Order
	Ready     []models.Order
	Completed []models.Order
}

func BucketByStatus(orders []models.Order) KitchenColumns {
	var cols KitchenColumns
	for _, order := range orders {
		switch order.Status {
		case models.StatusPending:
			cols.Pending = append(cols.Pending, order)
		case models.StatusPreparing:
			cols.Preparing = append(cols.Preparing, order)
		case models.StatusReady:
			cols.Ready = append(cols.Ready, order)
		case models.StatusCompleted:
			cols.Completed = append(cols.Completed, order)
		}
	}
	return cols
}

// AssistanceRequests filters the table snapshot down to tables flagged for
// table-side help.
func AssistanceRequests(tables []models.Table) []models.Table {
	var flagged []models.Table
	for _, table := range tables {
		if table.NeedsAssistance {
			flagged = append(flagged, table)
		}
	}
	return flagged
}
