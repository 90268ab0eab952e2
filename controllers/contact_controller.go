// controllers/contact_controller.go
package controllers

import (
	"bytes"
	"html/template"
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/emmanuelcheru/estate_backend/models"
	"github.com/emmanuelcheru/estate_backend/services"
)

// Recipients of every contact submission. The form is public; the
// destination is fixed.
var contactRecipients = []string{"ally@tlink.dk", "emmanuel4cheru@gmail.com"}

// contactEmailTemplate renders the submission into the notification email.
// html/template escapes every interpolated field, so form input cannot
// inject markup into the message.
var contactEmailTemplate = template.Must(template.New("contact").Parse(`
<html>
<head>
    <style>
        body {
            font-family: 'Arial', sans-serif;
            padding: 20px;
            background-color: #f9f9f9;
            color: #333;
        }
        .container {
            max-width: 600px;
            margin: auto;
            background-color: #ffffff;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
            overflow: hidden;
        }
        .header {
            background-color: #0056b3;
            color: #ffffff;
            padding: 20px 40px;
            text-align: center;
        }
        .body {
            padding: 20px 40px;
            background-color: #ffffff;
            line-height: 1.5;
        }
        h2 {
            color: #0056b3;
            margin-top: 0;
        }
        p {
            margin: 10px 0;
            color: #555;
        }
        .footer {
            font-size: 12px;
            text-align: center;
            padding: 20px;
            background-color: #f0f0f0;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Contact Submission Details</h2>
        </div>
        <div class="body">
            <p><strong>Name:</strong> {{.Form.Name}}</p>
            <p><strong>Telephone:</strong> {{.Form.Telephone}}</p>
            <p><strong>Email:</strong> {{.Form.Email}}</p>
            <p><strong>Interest Date:</strong> {{.Form.TravelDate}}</p>
            <p><strong>Interested City:</strong> {{.Form.City}}</p>
            <p><strong>Number of Guests:</strong> {{.Form.Guests}}</p>
            <p><strong>Preferred Number of Rooms:</strong> {{.Form.Rooms}}</p>
            <p><strong>Desired House Type:</strong> {{.Form.HouseType}}</p>
        </div>
        <div class="footer">
            Contact Form Submitted Successfully &middot; Ref {{.Reference}}
        </div>
    </div>
</body>
</html>
`))

// ContactController relays contact form submissions to email and answers
// with static HTML pages.
type ContactController struct {
	mailer      services.Mailer
	successPage string
	errorPage   string
}

func NewContactController(mailer services.Mailer, successPage, errorPage string) *ContactController {
	return &ContactController{
		mailer:      mailer,
		successPage: successPage,
		errorPage:   errorPage,
	}
}

// Submit renders the submitted fields into the notification email and
// dispatches it. This endpoint is intentionally unauthenticated.
func (cc *ContactController) Submit(c echo.Context) error {
	var form models.ContactForm
	if err := c.Bind(&form); err != nil {
		return c.File(cc.errorPage)
	}

	var body bytes.Buffer
	err := contactEmailTemplate.Execute(&body, struct {
		Form      models.ContactForm
		Reference string
	}{
		Form:      form,
		Reference: uuid.NewString(),
	})
	if err != nil {
		log.Printf("Error rendering contact email: %v", err)
		return c.File(cc.errorPage)
	}

	if err := cc.mailer.Send(contactRecipients, "New Contact Form Submission", "text/html", body.String()); err != nil {
		log.Printf("Error sending email: %v", err)
		return c.File(cc.errorPage)
	}

	return c.File(cc.successPage)
}
