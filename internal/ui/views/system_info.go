package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath        string
	AccountServiceURL string
	PaymentServiceURL string
	Currency          string
	AppDataDir        string
}

func RenderSystemInfo(items SystemInfoItem) error {
	pterm.DefaultSection.Println("Teller Configuration")

	tableData := pterm.TableData{
		{"Setting", "Value"},
		{"Config file", items.ConfigPath},
		{"Account service", items.AccountServiceURL},
		{"Payment service", items.PaymentServiceURL},
		{"Payment currency", items.Currency},
		{"App data dir", items.AppDataDir},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
