package mailer

import "html/template"

var receiptTemplate = template.Must(template.New("receipt").Parse(`
<div style="font-family: 'Helvetica Neue', Arial, sans-serif; background-color: #111111; padding: 40px 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #1a1b1a; border-radius: 16px; border: 1px solid #333;">
    <div style="background-color: #bde33c; padding: 25px; text-align: center;">
      <h1 style="margin: 0; color: #111111; text-transform: uppercase;">Booking Confirmed</h1>
      <p style="margin: 8px 0 0 0; color: #111111;">Game On! Your turf is secured.</p>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: #ffffff;">Hi {{.CustomerName}},</h2>
      <p style="color: #a0a0a0;">Thank you for choosing <strong>{{.TurfName}}</strong>. We've received your payment of <strong style="color: #bde33c;">₹{{printf "%.2f" .AmountPaid}}</strong>.</p>
      <table style="width: 100%; color: #ffffff;">
        <tr><td>Booking ID</td><td style="text-align: right; font-family: monospace;">#{{.BookingID}}</td></tr>
        <tr><td>Date</td><td style="text-align: right;">{{.BookingDate}}</td></tr>
        <tr><td>Time Slot</td><td style="text-align: right;">{{.TimeSlot}}</td></tr>
        <tr><td>Location</td><td style="text-align: right;">{{.TurfName}}</td></tr>
      </table>
      <p style="color: #888888;">Please arrive 10 minutes early. Bring your 'A' game and don't forget your non-marking shoes or turf studs.</p>
    </div>
  </div>
</div>
`))

var refundTemplate = template.Must(template.New("refund").Parse(`
<div style="font-family: 'Helvetica Neue', Arial, sans-serif; background-color: #111111; padding: 40px 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #1a1b1a; border-radius: 16px; border: 1px solid #333;">
    <div style="background-color: #ef4444; padding: 25px; text-align: center;">
      <h1 style="margin: 0; color: #ffffff; text-transform: uppercase;">Refund Processed</h1>
      <p style="margin: 8px 0 0 0; color: #ffffff;">Your booking has been cancelled and refunded.</p>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: #ffffff;">Hi {{.CustomerName}},</h2>
      <p style="color: #a0a0a0;">Your booking at <strong>{{.TurfName}}</strong> has been cancelled by the administrative team. A refund of <strong style="color: #ef4444;">₹{{printf "%.2f" .AmountPaid}}</strong> has been initiated and will reflect in your original payment method shortly.</p>
      <table style="width: 100%; color: #ffffff;">
        <tr><td>Booking ID</td><td style="text-align: right; font-family: monospace;">#{{.BookingID}}</td></tr>
        <tr><td>Date</td><td style="text-align: right;">{{.BookingDate}}</td></tr>
        <tr><td>Time Slot</td><td style="text-align: right;">{{.TimeSlot}}</td></tr>
      </table>
    </div>
  </div>
</div>
`))

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px;">
    <div style="background-color: #1a1b1a; color: #bde33c; padding: 20px; text-align: center;">
      <h1 style="margin: 0;">Security Alert</h1>
    </div>
    <div style="padding: 30px 20px; text-align: center;">
      <h2 style="color: #333;">Hi {{.Name}},</h2>
      <p style="color: #666;">Here is your secure 6-digit {{.Purpose}} code:</p>
      <h1 style="font-size: 36px; letter-spacing: 5px; color: #333;">{{.Code}}</h1>
      <p style="color: #666;">This code is valid for {{.TTLMinutes}} minutes. Please do not share this code with anyone.</p>
    </div>
  </div>
</div>
`))
