package dto

type ContactResponse struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Region string `json:"region"`
	Note   string `json:"note,omitempty"`
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalData int               `json:"total_data"`
}
