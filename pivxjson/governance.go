package pivxjson

// BudgetInfo is one budget proposal from getbudgetinfo.
type BudgetInfo struct {
	Name                  string  `json:"Name"`
	URL                   string  `json:"URL"`
	Hash                  string  `json:"Hash"`
	FeeHash               string  `json:"FeeHash"`
	BlockStart            int64   `json:"BlockStart"`
	BlockEnd              int64   `json:"BlockEnd"`
	TotalPaymentCount     int64   `json:"TotalPaymentCount"`
	RemainingPaymentCount int64   `json:"RemainingPaymentCount"`
	PaymentAddress        string  `json:"PaymentAddress"`
	Ratio                 float64 `json:"Ratio"`
	Yeas                  int64   `json:"Yeas"`
	Nays                  int64   `json:"Nays"`
	Abstains              int64   `json:"Abstains"`
	TotalPayment          float64 `json:"TotalPayment"`
	MonthlyPayment        float64 `json:"MonthlyPayment"`
	IsEstablished         bool    `json:"IsEstablished"`
	IsValid               bool    `json:"IsValid"`
	Allotted              float64 `json:"Allotted"`
}

func (b *BudgetInfo) UnmarshalJSON(data []byte) error {
	type plain BudgetInfo
	return decodeRecord(data, (*plain)(b))
}
