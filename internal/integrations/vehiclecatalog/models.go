package vehiclecatalog

// Make марка из ответа GetMakesForVehicleType
type Make struct {
	MakeID          int64  `json:"MakeId"`
	MakeName        string `json:"MakeName"`
	VehicleTypeID   int64  `json:"VehicleTypeId"`
	VehicleTypeName string `json:"VehicleTypeName"`
}

// Model модель из ответа GetModelsForMake
type Model struct {
	MakeID    int64  `json:"Make_ID"`
	MakeName  string `json:"Make_Name"`
	ModelID   int64  `json:"Model_ID"`
	ModelName string `json:"Model_Name"`
}

// envelope общий конверт ответов vPIC
type envelope[T any] struct {
	Count          int    `json:"Count"`
	Message        string `json:"Message"`
	SearchCriteria string `json:"SearchCriteria"`
	Results        []T    `json:"Results"`
}
