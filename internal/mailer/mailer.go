// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends transactional notification emails through AWS SES.
// The contact form notification is the only message this application sends.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Sender delivers a plain-text email to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ContactNotification formats the operator email for a stored contact
// message. Missing fields render as empty strings.
func ContactNotification(rec map[string]any) (subject, body string) {
	subject = fmt.Sprintf("New contact message: %s", text(rec["subject"]))
	body = fmt.Sprintf("From: %s <%s>\n\n%s",
		text(rec["name"]), text(rec["email"]), text(rec["message"]))
	return subject, body
}

func text(v any) string {
	s, _ := v.(string)
	return s
}

// SES sends email through AWS Simple Email Service.
type SES struct {
	client *ses.Client
	from   string
}

// NewSES builds an SES mailer using the default AWS credential chain.
func NewSES(ctx context.Context, region, from string) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return &SES{
		client: ses.NewFromConfig(cfg),
		from:   from,
	}, nil
}

// Send delivers a plain-text email via SES.
func (m *SES) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
