package dto

type CourierResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListCouriersResponse struct {
	Couriers []CourierResponse `json:"couriers"`
}

// A blank name gets the default "Courier N".
type CreateCourierRequest struct {
	Name string `json:"name" validate:"max=64"`
}
