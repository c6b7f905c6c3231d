package mailer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Template names. Callers render by name; unknown names are an error.
const (
	TemplateWaitlistWelcome      = "waitlist-welcome"
	TemplateWaitlistNotification = "waitlist-notification"
	TemplatePasswordReset        = "password-reset"
	TemplateContactConfirmation  = "contact-confirmation"
	TemplateContactNotification  = "contact-notification"
	TemplateWebsiteCreation      = "website-creation"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{([a-zA-Z][a-zA-Z0-9_]*)\}\}`)
	conditionalRe = regexp.MustCompile(`(?s)\{\{#if ([a-zA-Z][a-zA-Z0-9_]*)\}\}(.*?)\{\{/if\}\}`)
)

// Render substitutes {{placeholder}} tokens and resolves
// {{#if field}}...{{/if}} conditional blocks in the named template. A block
// is kept when its field is present and non-empty, dropped otherwise.
// {{currentYear}} is always available.
func Render(name string, vars map[string]string) (subject, html string, err error) {
	tpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	if vars == nil {
		vars = map[string]string{}
	}
	if _, ok := vars["currentYear"]; !ok {
		vars["currentYear"] = strconv.Itoa(time.Now().Year())
	}

	return substitute(tpl.subject, vars), substitute(tpl.html, vars), nil
}

func substitute(s string, vars map[string]string) string {
	s = conditionalRe.ReplaceAllStringFunc(s, func(block string) string {
		m := conditionalRe.FindStringSubmatch(block)
		if strings.TrimSpace(vars[m[1]]) == "" {
			return ""
		}
		return m[2]
	})
	return placeholderRe.ReplaceAllStringFunc(s, func(token string) string {
		key := placeholderRe.FindStringSubmatch(token)[1]
		if v, ok := vars[key]; ok {
			return v
		}
		return token
	})
}

type emailTemplate struct {
	subject string
	html    string
}

const layoutHeader = `<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,Helvetica,sans-serif;">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
      <tr><td align="center" style="padding:32px 16px;">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;overflow:hidden;">
          <tr><td style="background:#1e3a8a;padding:24px;text-align:center;">
            <span style="color:#ffffff;font-size:22px;font-weight:bold;">Juzbuild</span>
          </td></tr>
          <tr><td style="padding:32px;">`

const layoutFooter = `          </td></tr>
          <tr><td style="padding:24px;text-align:center;color:#9ca3af;font-size:12px;">
            &copy; {{currentYear}} Juzbuild. All rights reserved.
          </td></tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>`

var templates = map[string]emailTemplate{
	TemplateWaitlistWelcome: {
		subject: "You're on the Juzbuild waitlist",
		html: layoutHeader + `
            <h1 style="font-size:20px;color:#111827;">Welcome, {{name}}!</h1>
            <p style="color:#374151;">Thanks for joining the Juzbuild waitlist. You'll be among the first to launch a branded real-estate website in minutes.</p>
            {{#if company}}<p style="color:#374151;">We've noted you're with <strong>{{company}}</strong>.</p>{{/if}}
            <p style="color:#374151;">We'll email you as soon as your spot opens up.</p>` + layoutFooter,
	},
	TemplateWaitlistNotification: {
		subject: "New waitlist signup: {{name}}",
		html: layoutHeader + `
            <h1 style="font-size:20px;color:#111827;">New waitlist signup</h1>
            <p style="color:#374151;"><strong>Name:</strong> {{name}}</p>
            <p style="color:#374151;"><strong>Email:</strong> {{email}}</p>
            {{#if company}}<p style="color:#374151;"><strong>Company:</strong> {{company}}</p>{{/if}}
            {{#if phone}}<p style="color:#374151;"><strong>Phone:</strong> {{phone}}</p>{{/if}}` + layoutFooter,
	},
	TemplatePasswordReset: {
		subject: "Reset your Juzbuild password",
		html: layoutHeader + `
            <h1 style="font-size:20px;color:#111827;">Password reset</h1>
            <p style="color:#374151;">Hi {{name}}, we received a request to reset your password. The link below expires in one hour.</p>
            <p style="text-align:center;margin:24px 0;">
              <a href="{{resetUrl}}" style="background:#1e3a8a;color:#ffffff;padding:12px 24px;border-radius:6px;text-decoration:none;">Reset password</a>
            </p>
            <p style="color:#9ca3af;font-size:13px;">If you didn't request this, you can safely ignore this email.</p>` + layoutFooter,
	},
	TemplateContactConfirmation: {
		subject: "We received your message",
		html: layoutHeader + `
            <h1 style="font-size:20px;color:#111827;">Thanks for reaching out, {{name}}</h1>
            <p style="color:#374151;">We received your message and will get back to you within one business day.</p>
            <p style="color:#6b7280;font-style:italic;">&ldquo;{{message}}&rdquo;</p>` + layoutFooter,
	},
	TemplateContactNotification: {
		subject: "New contact message from {{name}}",
		html: layoutHeader + `
            <h1 style="font-size:20px;color:#111827;">New contact message</h1>
            <p style="color:#374151;"><strong>From:</strong> {{name}} &lt;{{email}}&gt;</p>
            {{#if phone}}<p style="color:#374151;"><strong>Phone:</strong> {{phone}}</p>{{/if}}
            {{#if company}}<p style="color:#374151;"><strong>Company:</strong> {{company}}</p>{{/if}}
            <p style="color:#374151;"><strong>Subject:</strong> {{subject}}</p>
            <p style="color:#374151;">{{message}}</p>` + layoutFooter,
	},
	TemplateWebsiteCreation: {
		subject: "Your website is ready 🎉",
		html: layoutHeader + `
            <h1 style="font-size:20px;color:#111827;">Congratulations, {{name}}!</h1>
            <p style="color:#374151;">Your new real-estate website is live at:</p>
            <p style="text-align:center;margin:24px 0;">
              <a href="{{websiteUrl}}" style="background:#1e3a8a;color:#ffffff;padding:12px 24px;border-radius:6px;text-decoration:none;">{{domain}}</a>
            </p>
            <p style="color:#374151;">Log in to your dashboard to manage listings, leads, and testimonials.</p>` + layoutFooter,
	},
}
