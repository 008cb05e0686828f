// Package resend sends mailer messages through the Resend API.
//
// It is an alternative to package mailgun with the same Transport contract:
// one API call per Send and SDK errors returned unchanged.
//
//	tr, err := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "noreply@example.com",
//		SenderName:  "Example",
//	})
//
// Messages are mapped as follows: a missing From falls back to the configured
// sender, list addresses become Resend recipient lists, "h:" options become
// headers and "v:" options become tags. Other options are ignored.
package resend
