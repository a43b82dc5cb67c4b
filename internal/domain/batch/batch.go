// Package batch defines the canned payloads the mock backend serves.
//
// The values are deliberately constant: clients developing against this
// server rely on getting the exact same extraction for every upload.
package batch

// Fields is the flat set of values the pretend OCR engine "extracts"
// from a receipt image.
type Fields struct {
	Vendor          string `json:"vendor"`
	Total           string `json:"total"`
	TransactionDate string `json:"transactionDate"`
}

// FileResult pairs an uploaded file name with its extraction.
type FileResult struct {
	File string `json:"file"`
	Data Fields `json:"data"`
}

// ScanResult is the full response shape for a processed upload batch.
type ScanResult struct {
	Results []FileResult `json:"results"`
	Fields  Fields       `json:"fields"`
	BatchID string       `json:"batchId"`
}

// Receipt acknowledges a submitted item.
type Receipt struct {
	OK     bool   `json:"ok"`
	ItemID string `json:"itemId"`
}

// Fixture values returned on every request.
const (
	DemoFile   = "demo.png"
	DemoBatch  = "mock-batch-1"
	DemoItemID = "mock-1234"
)

// DemoFields returns the fixed extraction values.
func DemoFields() Fields {
	return Fields{
		Vendor:          "Demo Store",
		Total:           "12.34",
		TransactionDate: "2024-01-01",
	}
}

// DemoScan builds the canned result for an upload batch.
func DemoScan() ScanResult {
	f := DemoFields()
	return ScanResult{
		Results: []FileResult{{File: DemoFile, Data: f}},
		Fields:  f,
		BatchID: DemoBatch,
	}
}

// DemoReceipt builds the canned acknowledgement for a submission.
func DemoReceipt() Receipt {
	return Receipt{OK: true, ItemID: DemoItemID}
}
