package utils

import (
	"fmt"

	"chaicraft_back_end/internal/models"
)

// Rupees formats paise for display.
func Rupees(paise int) string {
	return fmt.Sprintf("₹%d.%02d", paise/100, paise%100)
}

// OrderConfirmationHTML is the email sent right after checkout, while the
// payment is still awaiting manual verification.
func OrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
			</tr>`, item.ProductName, item.Quantity, Rupees(item.PriceAtTime), Rupees(item.PriceAtTime*item.Quantity))
	}

	discountRow := ""
	if order.DiscountAmount > 0 {
		discountRow = fmt.Sprintf(`
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Discount:</td>
					<td style="padding: 8px;">−%s</td>
				</tr>`, Rupees(order.DiscountAmount))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order received</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #6b3f1d;">Thank you for your order!</h2>
		<p>We have received your order <strong>#%s</strong>.</p>
		<p>Your UPI payment will be verified by our team shortly; you will get another email once it is confirmed.</p>

		<h3>Order details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0e6d9;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Item</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Price</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>%s
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total payable:</td>
					<td style="padding: 8px; font-weight: bold;">%s</td>
				</tr>
			</tfoot>
		</table>

		<p>Delivery address: %s</p>

		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>The Chai Craft team</strong>
		</p>
	</div>
</body>
</html>`, order.ID.String(), itemsHTML, discountRow, Rupees(order.TotalAmount), order.DeliveryAddress)
}

// OrderStatusSubject maps a status change to the subject line.
func OrderStatusSubject(order models.Order) string {
	switch {
	case order.PaymentStatus == models.PaymentPaid:
		return "✅ Payment confirmed - Chai Craft"
	case order.PaymentStatus == models.PaymentFailed:
		return "❌ Payment verification failed - Chai Craft"
	case order.Status == models.OrderConfirmed:
		return "📦 Your order is confirmed - Chai Craft"
	case order.Status == models.OrderDelivered:
		return "🎉 Your order has been delivered - Chai Craft"
	case order.Status == models.OrderCancelled:
		return "❌ Order cancelled - Chai Craft"
	default:
		return "📋 Order update - Chai Craft"
	}
}

func OrderStatusHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order update</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #6b3f1d;">Order update</h2>
		<p>Your order <strong>#%s</strong> is now:</p>
		<ul>
			<li>Order status: <strong>%s</strong></li>
			<li>Payment status: <strong>%s</strong></li>
		</ul>
		<p>Total: <strong>%s</strong></p>
		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>The Chai Craft team</strong>
		</p>
	</div>
</body>
</html>`, order.ID.String(), order.Status, order.PaymentStatus, Rupees(order.TotalAmount))
}

// ApplicationStatusHTML notifies an applicant of a status change.
func ApplicationStatusHTML(app models.JobApplication, jobRole string) string {
	var message string
	switch app.Status {
	case models.ApplicationReviewed:
		message = "Your application has been reviewed and is moving forward."
	case models.ApplicationHired:
		message = "Congratulations, we would love to have you on the team! We will reach out with next steps."
	case models.ApplicationRejected:
		message = "We will not be moving forward this time. Thank you for your interest, and please keep an eye on future openings."
	default:
		message = "Your application status has been updated."
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Application update</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #6b3f1d;">Hi %s,</h2>
		<p>There is an update on your application for <strong>%s</strong>:</p>
		<p style="font-size: 18px;"><strong>%s</strong></p>
		<p>%s</p>
		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>The Chai Craft team</strong>
		</p>
	</div>
</body>
</html>`, app.Name, jobRole, app.Status, message)
}
