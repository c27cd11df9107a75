package client

import (
	"reflect"
	"time"

	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/utils"
)

// Poll cadences observed by the two viewers. There is no push channel: each
// viewer independently re-fetches the full collection and treats the response
// as complete replacement state.
const (
	KitchenPollInterval       = 3 * time.Second
	CustomerOrderPollInterval = 4 * time.Second
	BillPollInterval          = 5 * time.Second
)

// OrderPoller re-fetches the order list on a fixed interval. OnChange fires
// with the full snapshot whenever it differs structurally from the previous
// one — suppression of identical snapshots is a display optimization only,
// never a correctness mechanism. Fetch failures are logged and retried on the
// next tick; the loop never exits on error.
type OrderPoller struct {
	Client    *Client
	TableCode string // empty polls every table (kitchen view)
	Interval  time.Duration
	OnChange  func([]models.Order)

	StopChan chan struct{}
	last     []models.Order
	seeded   bool
}

func NewOrderPoller(c *Client, tableCode string, interval time.Duration, onChange func([]models.Order)) *OrderPoller {
	return &OrderPoller{
		Client:    c,
		TableCode: tableCode,
		Interval:  interval,
		OnChange:  onChange,
		StopChan:  make(chan struct{}),
	}
}

func (p *OrderPoller) Start() {
	go func() {
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		p.tick()
		for {
			select {
			case <-ticker.C:
				p.tick()
			case <-p.StopChan:
				return
			}
		}
	}()
}

// Stop ends scheduling. An in-flight fetch is allowed to finish; its result
// is discarded because no further tick delivers it.
func (p *OrderPoller) Stop() {
	close(p.StopChan)
}

func (p *OrderPoller) tick() {
	orders, err := p.Client.GetOrders(p.TableCode)
	if err != nil {
		utils.ErrorLogger.Errorf("order poll failed, retrying next tick: %v", err)
		return
	}

	if p.seeded && reflect.DeepEqual(orders, p.last) {
		return
	}
	p.last = orders
	p.seeded = true
	if p.OnChange != nil {
		p.OnChange(orders)
	}
}

// TablePoller re-fetches table state on a fixed interval: the full table list
// when Code is empty (kitchen assistance panel), or the session's own table
// otherwise (customer assistance indicator). Same full-snapshot semantics as
// OrderPoller.
type TablePoller struct {
	Client   *Client
	Code     string // empty polls every table
	Interval time.Duration
	OnChange func([]models.Table)

	StopChan chan struct{}
	last     []models.Table
	seeded   bool
}

func NewTablePoller(c *Client, code string, interval time.Duration, onChange func([]models.Table)) *TablePoller {
	return &TablePoller{
		Client:   c,
		Code:     code,
		Interval: interval,
		OnChange: onChange,
		StopChan: make(chan struct{}),
	}
}

func (p *TablePoller) Start() {
	go func() {
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		p.tick()
		for {
			select {
			case <-ticker.C:
				p.tick()
			case <-p.StopChan:
				return
			}
		}
	}()
}

func (p *TablePoller) Stop() {
	close(p.StopChan)
}

func (p *TablePoller) tick() {
	var tables []models.Table
	var err error
	if p.Code == "" {
		tables, err = p.Client.GetTables()
	} else {
		var table *models.Table
		table, err = p.Client.GetTable(p.Code)
		if err == nil {
			tables = []models.Table{*table}
		}
	}
	if err != nil {
		utils.ErrorLogger.Errorf("table poll failed, retrying next tick: %v", err)
		return
	}

	if p.seeded && reflect.DeepEqual(tables, p.last) {
		return
	}
	p.last = tables
	p.seeded = true
	if p.OnChange != nil {
		p.OnChange(tables)
	}
}
