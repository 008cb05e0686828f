package mailgun_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtransport/pkg/address"
	"github.com/dmitrymomot/mailtransport/pkg/mailer"
	"github.com/dmitrymomot/mailtransport/pkg/mailgun"
)

var _ mailer.Transport = (*mailgun.Transport)(nil)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Send(ctx context.Context, payload *mailgun.Payload) (*mailgun.Response, error) {
	args := m.Called(ctx, payload)
	if resp := args.Get(0); resp != nil {
		return resp.(*mailgun.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func sampleEnvelope() mailer.Envelope {
	return mailer.Envelope{Data: mailer.Message{
		From:    address.String("from@bar.com"),
		To:      address.String("to@bar.com"),
		Subject: "Subject",
		Text:    "Hello",
		Options: map[string]any{"foo": "bar"},
	}}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		tr, err := mailgun.New(mailgun.Config{APIKey: "key-123", Domain: "mg.example.com"})
		require.NoError(t, err)
		require.NotNil(t, tr)
		require.Equal(t, "mailgun", tr.Name())

		client, ok := tr.Client().(*mailgun.HTTPClient)
		require.True(t, ok)
		require.Equal(t, "https://api.mailgun.net/v3/mg.example.com/messages", client.Endpoint())
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		tr, err := mailgun.New(mailgun.Config{Domain: "mg.example.com"})
		require.ErrorIs(t, err, mailgun.ErrMissingAPIKey)
		require.Nil(t, tr)
	})

	t.Run("missing domain", func(t *testing.T) {
		t.Parallel()

		tr, err := mailgun.New(mailgun.Config{APIKey: "key-123"})
		require.ErrorIs(t, err, mailgun.ErrMissingDomain)
		require.Nil(t, tr)
	})
}

func TestTransport_Send(t *testing.T) {
	t.Parallel()

	t.Run("success returns message id", func(t *testing.T) {
		t.Parallel()

		client := new(MockClient)
		client.On("Send", mock.Anything, mock.MatchedBy(func(p *mailgun.Payload) bool {
			return p.Has("from") && p.Has("to") && !p.Has("foo")
		})).Return(&mailgun.Response{
			ID:      "<20111114174239.25659.5817@samples.mailgun.org>",
			Message: "Queued. Thank you.",
		}, nil).Once()

		tr := mailgun.NewWithClient(client)
		res, err := tr.Send(context.Background(), sampleEnvelope())

		require.NoError(t, err)
		require.NotNil(t, res)
		require.Equal(t, "<20111114174239.25659.5817@samples.mailgun.org>", res.MessageID)
		client.AssertExpectations(t)
		client.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("client error passed through unchanged", func(t *testing.T) {
		t.Parallel()

		sendErr := &mailgun.APIError{StatusCode: 401, Message: "Forbidden"}
		client := new(MockClient)
		client.On("Send", mock.Anything, mock.Anything).Return(nil, sendErr).Once()

		tr := mailgun.NewWithClient(client)
		res, err := tr.Send(context.Background(), sampleEnvelope())

		require.Nil(t, res)
		require.Same(t, sendErr, err)
		client.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("plain error passed through unchanged", func(t *testing.T) {
		t.Parallel()

		sendErr := errors.New("Invalid Domain")
		client := new(MockClient)
		client.On("Send", mock.Anything, mock.Anything).Return(nil, sendErr).Once()

		res, err := mailgun.NewWithClient(client).Send(context.Background(), sampleEnvelope())

		require.Nil(t, res)
		require.Equal(t, sendErr, err)
		require.EqualError(t, err, "Invalid Domain")
	})

	t.Run("nil response without error", func(t *testing.T) {
		t.Parallel()

		client := new(MockClient)
		client.On("Send", mock.Anything, mock.Anything).Return(nil, nil).Once()

		res, err := mailgun.NewWithClient(client).Send(context.Background(), sampleEnvelope())

		require.Nil(t, res)
		require.ErrorIs(t, err, mailgun.ErrEmptyResponse)
	})

	t.Run("context forwarded to client", func(t *testing.T) {
		t.Parallel()

		type ctxKey struct{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

		client := new(MockClient)
		client.On("Send", mock.MatchedBy(func(c context.Context) bool {
			return c.Value(ctxKey{}) == "marker"
		}), mock.Anything).Return(&mailgun.Response{ID: "<id@mg>"}, nil).Once()

		_, err := mailgun.NewWithClient(client).Send(ctx, sampleEnvelope())
		require.NoError(t, err)
		client.AssertExpectations(t)
	})
}

func TestTransport_Deliver(t *testing.T) {
	t.Parallel()

	client := new(MockClient)
	client.On("Send", mock.Anything, mock.Anything).
		Return(&mailgun.Response{ID: "<20111114174239.25659.5817@samples.mailgun.org>"}, nil).Once()

	tr := mailgun.NewWithClient(client)

	var calls int
	var got *mailer.Result
	mailer.Deliver(context.Background(), tr, sampleEnvelope(), func(err error, res *mailer.Result) {
		calls++
		require.NoError(t, err)
		got = res
	})

	require.Equal(t, 1, calls)
	require.Equal(t, "<20111114174239.25659.5817@samples.mailgun.org>", got.MessageID)
}
