package domain

// ReserveRequest — запрос гостя на резервацию продукта.
type ReserveRequest struct {
	ProductID       string `json:"product_id"`
	ReservedBy      string `json:"reserved_by"`
	ReservedContact string `json:"reserved_contact"`
	IsAnonymous     bool   `json:"is_anonymous"`
	Message         string `json:"message"`
	PhotoDataURI    string `json:"photo"`
}

// SurpriseRequest — запрос гостя на добавление подарка-сюрприза.
type SurpriseRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	GivenBy      string `json:"given_by"`
	Contact      string `json:"contact"`
	IsAnonymous  bool   `json:"is_anonymous"`
	Message      string `json:"message"`
	PhotoDataURI string `json:"photo"`
}

// ReserveResult — итог резервации: серверная запись и локальная запись трекера посетителя.
// Tracked=false, если локальную запись не удалось сохранить (резервация при этом состоялась).
type ReserveResult struct {
	Reservation Reservation      `json:"reservation"`
	Local       LocalReservation `json:"local"`
	Tracked     bool             `json:"tracked"`
}
