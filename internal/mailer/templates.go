package mailer

import (
	"bytes"
	"html/template"

	"github.com/eyesoft/studio-backend/internal/events"
)

// Email theme, matching the site palette.
const (
	colorPrimary       = "#2E7D32"
	colorSecondary     = "#8FBC8F"
	colorTextPrimary   = "#5D4037"
	colorTextSecondary = "#795548"
	colorSurface       = "#F5F5F0"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: 'Montserrat', Arial, sans-serif; line-height: 1.6; color: {{.TextPrimary}}; background-color: {{.Surface}}; padding: 20px; border-radius: 8px; max-width: 600px; margin: auto; border: 1px solid {{.Secondary}};">
  <h1 style="color: {{.Primary}}; font-size: 24px; margin-bottom: 15px; text-align: center;">Thank You, {{.Name}}!</h1>
  <p style="font-size: 16px; margin-bottom: 10px;">We've received your booking request for the <strong>{{.Tier}}</strong> package in the <strong>{{.Category}}</strong> category.</p>
  <p style="font-size: 16px; margin-bottom: 10px;">We're excited about the possibility of working with you! We'll review your request and get back to you as soon as possible to confirm details and availability.</p>
  <p style="font-size: 16px; margin-bottom: 20px;">If you have any urgent questions, feel free to reply to this email or contact us via Instagram <a href="https://www.instagram.com/eyesofteee" style="color: {{.Primary}}; text-decoration: none; font-weight: bold;">@eyesofteee</a>.</p>
  <hr style="border: none; border-top: 1px solid {{.Secondary}}; margin: 20px 0;"/>
  <p style="font-size: 14px; color: {{.TextSecondary}};">Best regards,</p>
  <p style="font-size: 16px; font-weight: bold; color: {{.Primary}}; margin-top: 5px;">The Eyes Of T Team</p>
</div>
`))

var adminAlertTmpl = template.Must(template.New("adminAlert").Parse(`
<div style="font-family: 'Montserrat', Arial, sans-serif; line-height: 1.6; color: {{.TextPrimary}}; background-color: {{.Surface}}; padding: 20px; border-radius: 8px; max-width: 600px; margin: auto; border: 1px solid {{.Secondary}};">
  <h1 style="color: {{.Primary}}; font-size: 24px; margin-bottom: 15px; text-align: center;">New Booking Request!</h1>
  <p style="font-size: 16px; margin-bottom: 15px;">You've received a new booking request with the following details:</p>
  <ul style="list-style-type: none; padding-left: 0; margin-bottom: 15px;">
    <li style="font-size: 16px; margin-bottom: 8px;"><strong>Name:</strong> {{.Name}}</li>
    <li style="font-size: 16px; margin-bottom: 8px;"><strong>Email:</strong> <a href="mailto:{{.Email}}" style="color: {{.Primary}}; text-decoration: none; font-weight: bold;">{{.Email}}</a></li>
    <li style="font-size: 16px; margin-bottom: 8px;"><strong>Category:</strong> {{.Category}}</li>
    <li style="font-size: 16px; margin-bottom: 8px;"><strong>Tier:</strong> {{.Tier}}</li>
  </ul>
  <p style="font-size: 16px; margin-bottom: 5px;"><strong>Booking ID:</strong> {{.BookingID}}</p>
  {{- if and (eq .Category "Athletics") .SportDetails}}
  <p style="font-size: 16px; margin-bottom: 5px;"><strong>Sport Details:</strong> {{.SportDetails}}</p>
  {{- end}}
  {{- if and (eq .Category "Portraits") .PortraitDetails}}
  <p style="font-size: 16px; margin-bottom: 5px;"><strong>Portrait Ideas:</strong> {{.PortraitDetails}}</p>
  {{- end}}
  {{- if .ExtraInfo}}
  <p style="font-size: 16px; margin-bottom: 5px;"><strong>Additional Info:</strong> {{.ExtraInfo}}</p>
  {{- end}}
  <p style="font-size: 16px; margin-top: 20px;">Please follow up with them soon!</p>
  <hr style="border: none; border-top: 1px solid {{.Secondary}}; margin: 20px 0;"/>
  <p style="font-size: 14px; color: {{.TextSecondary}};"><em>This is an automated notification.</em></p>
</div>
`))

type themeData struct {
	Primary       string
	Secondary     string
	TextPrimary   string
	TextSecondary string
	Surface       string
}

func theme() themeData {
	return themeData{
		Primary:       colorPrimary,
		Secondary:     colorSecondary,
		TextPrimary:   colorTextPrimary,
		TextSecondary: colorTextSecondary,
		Surface:       colorSurface,
	}
}

type confirmationData struct {
	themeData
	Name     string
	Tier     string
	Category string
}

type adminAlertData struct {
	themeData
	BookingID       string
	Name            string
	Email           string
	Tier            string
	Category        string
	SportDetails    *string
	PortraitDetails *string
	ExtraInfo       *string
}

func renderConfirmation(msg events.BookingConfirmation) (string, error) {
	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, confirmationData{
		themeData: theme(),
		Name:      msg.Name,
		Tier:      msg.Tier,
		Category:  msg.Category,
	})
	return buf.String(), err
}

func renderAdminAlert(msg events.BookingAdminAlert) (string, error) {
	var buf bytes.Buffer
	err := adminAlertTmpl.Execute(&buf, adminAlertData{
		themeData:       theme(),
		BookingID:       msg.BookingID,
		Name:            msg.Name,
		Email:           msg.Email,
		Tier:            msg.Tier,
		Category:        msg.Category,
		SportDetails:    msg.SportDetails,
		PortraitDetails: msg.PortraitDetails,
		ExtraInfo:       msg.ExtraInfo,
	})
	return buf.String(), err
}
