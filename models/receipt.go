package models

// ReceiptProcessResult is returned after a receipt image has been uploaded
// and scanned by the server.
type ReceiptProcessResult struct {
	ReceiptImagePath string               `json:"receipt_image_path"`
	ReceiptImageURL  string               `json:"receipt_image_url"`
	ExtractedData    ReceiptExtractedData `json:"extracted_data"`
	ExpenseDate      string               `json:"expense_date"`
}

// ReceiptExtractedData is the information recognised on a receipt.
type ReceiptExtractedData struct {
	TotalAmount  float64       `json:"total_amount"`
	MerchantName string        `json:"merchant_name"`
	Date         string        `json:"date"`
	Items        []ReceiptItem `json:"items"`
}

// ReceiptItem is one recognised receipt line with a suggested category.
type ReceiptItem struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Quantity          float64 `json:"quantity"`
	CategoryID        int64   `json:"category_id"`
	SuggestedCategory string  `json:"suggested_category"`
}

// ReceiptURL is the body of GET /receipts/:path/url.
type ReceiptURL struct {
	URL string `json:"url"`
}
