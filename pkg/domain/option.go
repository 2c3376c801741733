package domain

// DeliveryOption is one priced and timed quote for a candidate transport.
// It is the record filtered, sorted and exported by the later stages and
// holds no reference back to the order it was computed from.
type DeliveryOption struct {
	TransportName     string  `json:"transportName"`
	TransportType     string  `json:"transportType"`
	TotalCost         float64 `json:"totalCost"`
	DeliveryTimeHours float64 `json:"deliveryTimeHours"`
	Speed             float64 `json:"speed"`
}
