package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ReceiptBaseURL is the frontend receipt page rendered into the PDF.
func ReceiptBaseURL() string {
	u := os.Getenv("FRONTEND_RECEIPT_URL")
	if u == "" {
		return "http://localhost:3000/receipt"
	}
	return u
}

// RenderReceiptPDF loads the frontend receipt page for an order in headless
// Chrome and prints it to PDF. The UPI QR goes in as a query param so the
// page can embed it without another round trip.
func RenderReceiptPDF(parent context.Context, orderID string, qrPNG []byte) ([]byte, error) {
	q := url.Values{}
	q.Set("id", orderID)
	if qrPNG != nil {
		q.Set("qr", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(qrPNG))
	}
	fullURL := fmt.Sprintf("%s?%s", ReceiptBaseURL(), q.Encode())

	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
