package utils

import (
	"fmt"
	"net/url"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

// BuildUPIURI builds a upi://pay deep link for the given amount in paise.
// The reference lands in the transaction note so the admin can match the
// incoming payment during manual verification.
func BuildUPIURI(vpa, payeeName, orderRef string, amountPaise int) string {
	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", payeeName)
	q.Set("am", fmt.Sprintf("%d.%02d", amountPaise/100, amountPaise%100))
	q.Set("cu", "INR")
	q.Set("tn", "Order "+orderRef)
	return "upi://pay?" + q.Encode()
}

// GenerateUPIQR renders the payment deep link as a 256px PNG.
func GenerateUPIQR(orderRef string, amountPaise int) ([]byte, error) {
	vpa := os.Getenv("UPI_VPA")
	if vpa == "" {
		vpa = "chandan32005c-2@oksbi"
	}
	payeeName := os.Getenv("UPI_PAYEE_NAME")
	if payeeName == "" {
		payeeName = "Chai Craft"
	}

	uri := BuildUPIURI(vpa, payeeName, orderRef, amountPaise)
	return qrcode.Encode(uri, qrcode.Medium, 256)
}
