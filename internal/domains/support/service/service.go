package service

import (
	"context"
	"zentravel/infras/otel"
	"zentravel/internal/domains/support/model/dto"
	"zentravel/shared/constant"
)

// Reference numbers for the trip. This is authored content, not fetched:
// the panel must work offline.
var contacts = []dto.ContactResponse{
	{Name: "歐盟緊急求助專線", Phone: "112", Region: "歐盟全境", Note: "警察、消防、救護通用"},
	{Name: "駐捷克台北經濟文化辦事處", Phone: "+420-603-166-707", Region: "捷克 Czech Republic", Note: "急難救助行動電話"},
	{Name: "駐德國台北代表處慕尼黑辦事處", Phone: "+49-89-5126-790", Region: "德國 Germany"},
	{Name: "駐奧地利台北經濟文化代表處", Phone: "+43-664-345-0455", Region: "奧地利 Austria", Note: "急難救助行動電話"},
	{Name: "外交部旅外國人急難救助專線", Phone: "+886-800-085-095", Region: "台灣 Taiwan", Note: "24 小時"},
}

type Support interface {
	GetContacts(ctx context.Context) (dto.GetContactsResponse, error)
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Support {
	return &serviceImpl{otel: otel}
}

func (s *serviceImpl) GetContacts(ctx context.Context) (res dto.GetContactsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Contacts = contacts
	res.TotalData = len(contacts)

	return res, nil
}
