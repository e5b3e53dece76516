package catalog

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// Встроенные справочники на случай недоступности внешнего каталога.
// Идентификаторы моделей: brandID*100+n, комплектаций: modelID*100+n.

var fallbackBrands = []domain.Brand{
	{ID: 1, Name: "Toyota"},
	{ID: 2, Name: "Ford"},
	{ID: 3, Name: "Chevrolet"},
	{ID: 4, Name: "Volkswagen"},
	{ID: 5, Name: "Honda"},
	{ID: 6, Name: "Nissan"},
	{ID: 7, Name: "Hyundai"},
	{ID: 8, Name: "Kia"},
	{ID: 9, Name: "Mercedes-Benz"},
	{ID: 10, Name: "BMW"},
	{ID: 11, Name: "Audi"},
	{ID: 12, Name: "Fiat"},
	{ID: 13, Name: "Renault"},
	{ID: 14, Name: "Peugeot"},
	{ID: 15, Name: "Citroën"},
}

var fallbackModels = []domain.Model{
	{ID: 101, BrandID: 1, Name: "Corolla"},
	{ID: 102, BrandID: 1, Name: "Hilux"},
	{ID: 103, BrandID: 1, Name: "Yaris"},
	{ID: 104, BrandID: 1, Name: "Camry"},
	{ID: 105, BrandID: 1, Name: "RAV4"},

	{ID: 201, BrandID: 2, Name: "F-150"},
	{ID: 202, BrandID: 2, Name: "Focus"},
	{ID: 203, BrandID: 2, Name: "Mustang"},
	{ID: 204, BrandID: 2, Name: "Fiesta"},
	{ID: 205, BrandID: 2, Name: "Explorer"},
	{ID: 206, BrandID: 2, Name: "Escape"},

	{ID: 301, BrandID: 3, Name: "Silverado"},
	{ID: 302, BrandID: 3, Name: "Cruze"},
	{ID: 303, BrandID: 3, Name: "Onix"},
	{ID: 304, BrandID: 3, Name: "Malibu"},
	{ID: 305, BrandID: 3, Name: "Equinox"},
	{ID: 306, BrandID: 3, Name: "Camaro"},

	{ID: 401, BrandID: 4, Name: "Golf"},
	{ID: 402, BrandID: 4, Name: "Jetta"},
	{ID: 403, BrandID: 4, Name: "Amarok"},
	{ID: 404, BrandID: 4, Name: "Passat"},
	{ID: 405, BrandID: 4, Name: "Tiguan"},

	{ID: 501, BrandID: 5, Name: "Civic"},
	{ID: 502, BrandID: 5, Name: "CR-V"},
	{ID: 503, BrandID: 5, Name: "HR-V"},
	{ID: 504, BrandID: 5, Name: "Accord"},
	{ID: 505, BrandID: 5, Name: "Pilot"},

	{ID: 601, BrandID: 6, Name: "Frontier"},
	{ID: 602, BrandID: 6, Name: "Sentra"},
	{ID: 603, BrandID: 6, Name: "Kicks"},

	{ID: 701, BrandID: 7, Name: "Tucson"},
	{ID: 702, BrandID: 7, Name: "Elantra"},
	{ID: 703, BrandID: 7, Name: "Creta"},

	{ID: 801, BrandID: 8, Name: "Sportage"},
	{ID: 802, BrandID: 8, Name: "Cerato"},
	{ID: 803, BrandID: 8, Name: "Seltos"},

	{ID: 901, BrandID: 9, Name: "Clase C"},
	{ID: 902, BrandID: 9, Name: "Clase E"},
	{ID: 903, BrandID: 9, Name: "GLC"},

	{ID: 1001, BrandID: 10, Name: "Serie 3"},
	{ID: 1002, BrandID: 10, Name: "Serie 5"},
	{ID: 1003, BrandID: 10, Name: "X5"},

	{ID: 1101, BrandID: 11, Name: "A3"},
	{ID: 1102, BrandID: 11, Name: "A4"},
	{ID: 1103, BrandID: 11, Name: "Q5"},

	{ID: 1201, BrandID: 12, Name: "Cronos"},
	{ID: 1202, BrandID: 12, Name: "Argo"},
	{ID: 1203, BrandID: 12, Name: "Toro"},

	{ID: 1301, BrandID: 13, Name: "Sandero"},
	{ID: 1302, BrandID: 13, Name: "Duster"},
	{ID: 1303, BrandID: 13, Name: "Logan"},

	{ID: 1401, BrandID: 14, Name: "208"},
	{ID: 1402, BrandID: 14, Name: "3008"},
	{ID: 1403, BrandID: 14, Name: "Partner"},

	{ID: 1501, BrandID: 15, Name: "C3"},
	{ID: 1502, BrandID: 15, Name: "C4 Cactus"},
	{ID: 1503, BrandID: 15, Name: "Berlingo"},
}

var fallbackVersions = []domain.Version{
	version(10101, 101, "XLI 1.6", "1.6L", "Nafta", "Manual"),
	version(10102, 101, "XEI 1.8", "1.8L", "Nafta", "Manual"),
	version(10103, 101, "XEI 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(10104, 101, "SEG 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(10105, 101, "XEI Pack", "1.8L", "Nafta", "CVT"),

	version(10201, 102, "DX 2.4 TDI 4x2", "2.4L", "Diesel", "Manual"),
	version(10202, 102, "DX 2.4 TDI 4x4", "2.4L", "Diesel", "Manual"),
	version(10203, 102, "SR 2.8 TDI 4x2", "2.8L", "Diesel", "Manual"),
	version(10204, 102, "SR 2.8 TDI 4x4", "2.8L", "Diesel", "Manual"),
	version(10205, 102, "SRX 2.8 TDI 4x4 AT", "2.8L", "Diesel", "Automática"),
	version(10206, 102, "Limited 2.8 TDI 4x4 AT", "2.8L", "Diesel", "Automática"),

	version(10301, 103, "XLS 1.5", "1.5L", "Nafta", "Manual"),
	version(10302, 103, "XLS 1.5 CVT", "1.5L", "Nafta", "CVT"),
	version(10303, 103, "XS 1.5", "1.5L", "Nafta", "Manual"),
	version(10304, 103, "XS 1.5 CVT", "1.5L", "Nafta", "CVT"),

	version(20101, 201, "XL 3.3 V6", "3.3L V6", "Nafta", "Automática"),
	version(20102, 201, "XLT 3.5 V6", "3.5L V6", "Nafta", "Automática"),
	version(20103, 201, "Lariat 3.5 V6", "3.5L V6", "Nafta", "Automática"),

	version(20201, 202, "S 1.6", "1.6L", "Nafta", "Manual"),
	version(20202, 202, "S 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(20203, 202, "SE 2.0", "2.0L", "Nafta", "Manual"),
	version(20204, 202, "SE 2.0 AT", "2.0L", "Nafta", "Automática"),
	version(20205, 202, "Titanium 2.0 AT", "2.0L", "Nafta", "Automática"),

	version(20301, 203, "EcoBoost 2.3", "2.3L Turbo", "Nafta", "Manual"),
	version(20302, 203, "EcoBoost 2.3 AT", "2.3L Turbo", "Nafta", "Automática"),
	version(20303, 203, "GT 5.0 V8", "5.0L V8", "Nafta", "Manual"),
	version(20304, 203, "GT 5.0 V8 AT", "5.0L V8", "Nafta", "Automática"),

	version(30101, 301, "LT 5.3 V8", "5.3L V8", "Nafta", "Automática"),
	version(30102, 301, "LTZ 5.3 V8", "5.3L V8", "Nafta", "Automática"),
	version(30103, 301, "High Country 6.2 V8", "6.2L V8", "Nafta", "Automática"),

	version(30201, 302, "LS 1.4", "1.4L", "Nafta", "Manual"),
	version(30202, 302, "LT 1.4", "1.4L", "Nafta", "Manual"),
	version(30203, 302, "LT 1.4 AT", "1.4L", "Nafta", "Automática"),
	version(30204, 302, "LT 1.4 Turbo", "1.4L Turbo", "Nafta", "Manual"),
	version(30205, 302, "LT 1.4 Turbo AT", "1.4L Turbo", "Nafta", "Automática"),
	version(30206, 302, "LTZ 1.4 Turbo AT", "1.4L Turbo", "Nafta", "Automática"),

	version(30301, 303, "Joy 1.4", "1.4L", "Nafta", "Manual"),
	version(30302, 303, "LT 1.4", "1.4L", "Nafta", "Manual"),
	version(30303, 303, "LT 1.4 AT", "1.4L", "Nafta", "Automática"),
	version(30304, 303, "LTZ 1.4", "1.4L", "Nafta", "Manual"),
	version(30305, 303, "Premier 1.4 AT", "1.4L", "Nafta", "Automática"),

	version(40101, 401, "Trendline 1.4 TSI", "1.4L TSI", "Nafta", "Manual"),
	version(40102, 401, "Comfortline 1.4 TSI", "1.4L TSI", "Nafta", "Manual"),
	version(40103, 401, "Comfortline 1.4 TSI AT", "1.4L TSI", "Nafta", "Automática"),
	version(40104, 401, "Highline 1.4 TSI AT", "1.4L TSI", "Nafta", "Automática"),
	version(40105, 401, "GTI 2.0 TSI", "2.0L TSI", "Nafta", "Manual"),

	version(40201, 402, "Trendline 1.4 TSI", "1.4L TSI", "Nafta", "Manual"),
	version(40202, 402, "Comfortline 1.4 TSI", "1.4L TSI", "Nafta", "Manual"),
	version(40203, 402, "Comfortline 1.4 TSI AT", "1.4L TSI", "Nafta", "Automática"),
	version(40204, 402, "Highline 1.4 TSI AT", "1.4L TSI", "Nafta", "Automática"),

	version(40301, 403, "Startline 2.0 TDI", "2.0L TDI", "Diesel", "Manual"),
	version(40302, 403, "Comfortline 2.0 TDI", "2.0L TDI", "Diesel", "Manual"),
	version(40303, 403, "Comfortline 2.0 TDI AT", "2.0L TDI", "Diesel", "Automática"),
	version(40304, 403, "Highline 2.0 TDI AT", "2.0L TDI", "Diesel", "Automática"),
	version(40305, 403, "Extreme 3.0 V6 TDI", "3.0L V6 TDI", "Diesel", "Automática"),

	version(50101, 501, "LX 1.8", "1.8L", "Nafta", "Manual"),
	version(50102, 501, "LX 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(50103, 501, "EX 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(50104, 501, "EXL 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(50105, 501, "Touring 1.5 Turbo CVT", "1.5L Turbo", "Nafta", "CVT"),

	version(50201, 502, "LX 2.4", "2.4L", "Nafta", "CVT"),
	version(50202, 502, "EX 2.4", "2.4L", "Nafta", "CVT"),
	version(50203, 502, "EXL 2.4", "2.4L", "Nafta", "CVT"),
	version(50204, 502, "Touring 1.5 Turbo", "1.5L Turbo", "Nafta", "CVT"),

	version(50301, 503, "LX 1.8", "1.8L", "Nafta", "Manual"),
	version(50302, 503, "LX 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(50303, 503, "EX 1.8 CVT", "1.8L", "Nafta", "CVT"),
	version(50304, 503, "EXL 1.8 CVT", "1.8L", "Nafta", "CVT"),

	version(60101, 601, "S 2.5 TDI 4x2", "2.5L TDI", "Diesel", "Manual"),
	version(60102, 601, "S 2.5 TDI 4x4", "2.5L TDI", "Diesel", "Manual"),
	version(60103, 601, "SE 2.5 TDI 4x4", "2.5L TDI", "Diesel", "Manual"),
	version(60104, 601, "LE 2.5 TDI 4x4 AT", "2.5L TDI", "Diesel", "Automática"),

	version(60201, 602, "S 1.6", "1.6L", "Nafta", "Manual"),
	version(60202, 602, "S 1.6 CVT", "1.6L", "Nafta", "CVT"),
	version(60203, 602, "SV 1.6 CVT", "1.6L", "Nafta", "CVT"),
	version(60204, 602, "SR 1.6 CVT", "1.6L", "Nafta", "CVT"),

	version(60301, 603, "S 1.6", "1.6L", "Nafta", "Manual"),
	version(60302, 603, "S 1.6 CVT", "1.6L", "Nafta", "CVT"),
	version(60303, 603, "SV 1.6 CVT", "1.6L", "Nafta", "CVT"),
	version(60304, 603, "SR 1.6 CVT", "1.6L", "Nafta", "CVT"),

	version(70101, 701, "GL 2.0", "2.0L", "Nafta", "Manual"),
	version(70102, 701, "GL 2.0 AT", "2.0L", "Nafta", "Automática"),
	version(70103, 701, "GLS 2.0 AT", "2.0L", "Nafta", "Automática"),
	version(70104, 701, "Limited 2.0 AT", "2.0L", "Nafta", "Automática"),

	version(70201, 702, "GL 1.6", "1.6L", "Nafta", "Manual"),
	version(70202, 702, "GL 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(70203, 702, "GLS 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(70204, 702, "Limited 1.6 AT", "1.6L", "Nafta", "Automática"),

	version(70301, 703, "GL 1.6", "1.6L", "Nafta", "Manual"),
	version(70302, 703, "GL 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(70303, 703, "GLS 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(70304, 703, "Limited 1.6 AT", "1.6L", "Nafta", "Automática"),

	version(80101, 801, "LX 2.0", "2.0L", "Nafta", "Manual"),
	version(80102, 801, "LX 2.0 AT", "2.0L", "Nafta", "Automática"),
	version(80103, 801, "EX 2.0 AT", "2.0L", "Nafta", "Automática"),
	version(80104, 801, "SX 2.0 AT", "2.0L", "Nafta", "Automática"),

	version(80201, 802, "LX 1.6", "1.6L", "Nafta", "Manual"),
	version(80202, 802, "LX 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(80203, 802, "EX 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(80204, 802, "SX 1.6 AT", "1.6L", "Nafta", "Automática"),

	version(80301, 803, "LX 1.6", "1.6L", "Nafta", "Manual"),
	version(80302, 803, "LX 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(80303, 803, "EX 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(80304, 803, "SX Turbo 1.6 AT", "1.6L Turbo", "Nafta", "Automática"),

	version(120101, 1201, "Drive 1.3", "1.3L", "Nafta", "Manual"),
	version(120102, 1201, "Drive 1.8", "1.8L", "Nafta", "Manual"),
	version(120103, 1201, "Drive 1.8 AT", "1.8L", "Nafta", "Automática"),
	version(120104, 1201, "Precision 1.8 AT", "1.8L", "Nafta", "Automática"),

	version(120201, 1202, "Drive 1.3", "1.3L", "Nafta", "Manual"),
	version(120202, 1202, "Drive 1.8", "1.8L", "Nafta", "Manual"),
	version(120203, 1202, "Drive 1.8 AT", "1.8L", "Nafta", "Automática"),
	version(120204, 1202, "Precision 1.8 AT", "1.8L", "Nafta", "Automática"),

	version(120301, 1203, "Freedom 1.8", "1.8L", "Nafta", "Manual"),
	version(120302, 1203, "Freedom 1.8 AT", "1.8L", "Nafta", "Automática"),
	version(120303, 1203, "Volcano 2.0 TDI AT", "2.0L TDI", "Diesel", "Automática"),
	version(120304, 1203, "Ranch 2.0 TDI AT", "2.0L TDI", "Diesel", "Automática"),

	version(130101, 1301, "Authentique 1.6", "1.6L", "Nafta", "Manual"),
	version(130102, 1301, "Expression 1.6", "1.6L", "Nafta", "Manual"),
	version(130103, 1301, "Privilege 1.6", "1.6L", "Nafta", "Manual"),
	version(130104, 1301, "Stepway 1.6", "1.6L", "Nafta", "Manual"),
	version(130105, 1301, "Stepway 1.6 CVT", "1.6L", "Nafta", "CVT"),

	version(130201, 1302, "Expression 1.6", "1.6L", "Nafta", "Manual"),
	version(130202, 1302, "Expression 1.6 4x4", "1.6L", "Nafta", "Manual"),
	version(130203, 1302, "Privilege 2.0", "2.0L", "Nafta", "Manual"),
	version(130204, 1302, "Privilege 2.0 4x4", "2.0L", "Nafta", "Manual"),
	version(130205, 1302, "Dynamique 2.0 CVT", "2.0L", "Nafta", "CVT"),

	version(130301, 1303, "Authentique 1.6", "1.6L", "Nafta", "Manual"),
	version(130302, 1303, "Expression 1.6", "1.6L", "Nafta", "Manual"),
	version(130303, 1303, "Privilege 1.6", "1.6L", "Nafta", "Manual"),
	version(130304, 1303, "Privilege 1.6 CVT", "1.6L", "Nafta", "CVT"),

	version(140101, 1401, "Active 1.5", "1.5L", "Nafta", "Manual"),
	version(140102, 1401, "Active 1.5 AT", "1.5L", "Nafta", "Automática"),
	version(140103, 1401, "Allure 1.6", "1.6L", "Nafta", "Manual"),
	version(140104, 1401, "Allure 1.6 AT", "1.6L", "Nafta", "Automática"),
	version(140105, 1401, "GT Line 1.6 THP", "1.6L THP", "Nafta", "Automática"),

	version(140201, 1402, "Active 1.6 THP", "1.6L THP", "Nafta", "Automática"),
	version(140202, 1402, "Allure 1.6 THP", "1.6L THP", "Nafta", "Automática"),
	version(140203, 1402, "GT Line 1.6 THP", "1.6L THP", "Nafta", "Automática"),

	version(140301, 1403, "Furgon 1.6 HDI", "1.6L HDI", "Diesel", "Manual"),
	version(140302, 1403, "Patagonica 1.6", "1.6L", "Nafta", "Manual"),
	version(140303, 1403, "Patagonica VTC 1.6", "1.6L", "Nafta", "Manual"),

	version(150101, 1501, "VTI 115 Feel", "1.2L", "Nafta", "Manual"),
	version(150102, 1501, "VTI 115 Feel Pack", "1.2L", "Nafta", "Manual"),
	version(150103, 1501, "VTI 115 Shine", "1.2L", "Nafta", "Manual"),
	version(150104, 1501, "VTI 115 Shine AT", "1.2L", "Nafta", "Automática"),

	version(150201, 1502, "VTI 115 Feel", "1.2L", "Nafta", "Manual"),
	version(150202, 1502, "VTI 115 Feel Pack", "1.2L", "Nafta", "Manual"),
	version(150203, 1502, "VTI 115 Shine", "1.2L", "Nafta", "Manual"),
	version(150204, 1502, "VTI 115 Shine AT", "1.2L", "Nafta", "Automática"),

	version(150301, 1503, "Furgon 1.6 HDI", "1.6L HDI", "Diesel", "Manual"),
	version(150302, 1503, "Multispace VTI", "1.6L", "Nafta", "Manual"),
	version(150303, 1503, "Multispace Feel", "1.6L", "Nafta", "Manual"),
}

func version(id, modelID int64, name, displacement, fuel, transmission string) domain.Version {
	return domain.Version{
		ID:           id,
		ModelID:      modelID,
		Name:         name,
		Displacement: displacement,
		Fuel:         fuel,
		Transmission: transmission,
	}
}
