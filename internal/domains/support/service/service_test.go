package service_test

import (
	"context"
	"testing"
	otelMocks "zentravel/infras/otel/mocks"
	"zentravel/internal/domains/support/service"

	"github.com/stretchr/testify/assert"
)

func TestGetContacts(t *testing.T) {
	t.Parallel()

	svc := service.New(otelMocks.NewOtel())

	res, err := svc.GetContacts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, len(res.Contacts), res.TotalData)
	assert.NotEmpty(t, res.Contacts)

	assert.Equal(t, "112", res.Contacts[0].Phone)

	regions := make(map[string]bool)
	for _, contact := range res.Contacts {
		assert.NotEmpty(t, contact.Name)
		assert.NotEmpty(t, contact.Phone)
		regions[contact.Region] = true
	}

	assert.True(t, regions["捷克 Czech Republic"])
	assert.True(t, regions["奧地利 Austria"])
}
