package catalog

// builtin is the shipped rate table. Figures approximate each operator's
// published Lagos rate card in naira; smaller operators carry wider margins
// and lower base confidence because their cards are stale or unpublished.
var builtin = []FareModel{
	{
		ServiceID: "uber", Name: "Uber",
		BaseFare: 800, PerKm: 220, PerMin: 35, MinFare: 1200, BookingFee: 150,
		VehicleTypes: []VehicleCategory{
			{Type: "UberX", Multiplier: 1.0},
			{Type: "Comfort", Multiplier: 1.35},
			{Type: "XL", Multiplier: 1.7},
		},
		MarginOfError: 0.15, BaseConfidence: 85, ServiceType: ServiceCar,
	},
	{
		ServiceID: "bolt", Name: "Bolt",
		BaseFare: 700, PerKm: 200, PerMin: 30, MinFare: 1000, BookingFee: 100,
		VehicleTypes: []VehicleCategory{
			{Type: "Regular", Multiplier: 1.0},
			{Type: "Premium", Multiplier: 1.4},
			{Type: "XL", Multiplier: 1.65},
		},
		MarginOfError: 0.15, BaseConfidence: 85, ServiceType: ServiceCar,
	},
	{
		ServiceID: "indrive", Name: "inDrive",
		BaseFare: 600, PerKm: 180, PerMin: 25, MinFare: 900, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
		},
		MarginOfError: 0.25, BaseConfidence: 60, ServiceType: ServiceCar,
		IsBidBased: true,
	},
	{
		ServiceID: "rida", Name: "Rida",
		BaseFare: 550, PerKm: 170, PerMin: 25, MinFare: 850, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
		},
		MarginOfError: 0.25, BaseConfidence: 58, ServiceType: ServiceCar,
		IsBidBased: true,
	},
	{
		ServiceID: "lagride", Name: "LagRide",
		BaseFare: 750, PerKm: 210, PerMin: 32, MinFare: 1100, BookingFee: 100,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
			{Type: "SUV", Multiplier: 1.5},
		},
		MarginOfError: 0.18, BaseConfidence: 75, ServiceType: ServiceCar,
	},
	{
		ServiceID: "ekocab", Name: "Ekocab",
		BaseFare: 700, PerKm: 195, PerMin: 30, MinFare: 1000, BookingFee: 50,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
		},
		MarginOfError: 0.22, BaseConfidence: 62, ServiceType: ServiceCar,
	},
	{
		ServiceID: "ogataxi", Name: "Oga Taxi",
		BaseFare: 650, PerKm: 190, PerMin: 28, MinFare: 950, BookingFee: 50,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
			{Type: "Executive", Multiplier: 1.45},
		},
		MarginOfError: 0.22, BaseConfidence: 60, ServiceType: ServiceCar,
	},
	{
		ServiceID: "ocar", Name: "OCar",
		BaseFare: 600, PerKm: 185, PerMin: 27, MinFare: 900, BookingFee: 50,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
		},
		MarginOfError: 0.20, BaseConfidence: 65, ServiceType: ServiceCar,
	},
	{
		ServiceID: "t40", Name: "T40",
		BaseFare: 620, PerKm: 180, PerMin: 26, MinFare: 900, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Standard", Multiplier: 1.0},
		},
		MarginOfError: 0.25, BaseConfidence: 55, ServiceType: ServiceCar,
	},
	{
		ServiceID: "gokada", Name: "Gokada",
		BaseFare: 300, PerKm: 110, PerMin: 15, MinFare: 500, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Bike", Multiplier: 1.0},
		},
		MarginOfError: 0.18, BaseConfidence: 70, ServiceType: ServiceBike,
	},
	{
		ServiceID: "maxng", Name: "MAX",
		BaseFare: 320, PerKm: 115, PerMin: 16, MinFare: 520, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Bike", Multiplier: 1.0},
		},
		MarginOfError: 0.18, BaseConfidence: 70, ServiceType: ServiceBike,
	},
	{
		ServiceID: "safeboda", Name: "SafeBoda",
		BaseFare: 280, PerKm: 100, PerMin: 14, MinFare: 450, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Bike", Multiplier: 1.0},
		},
		MarginOfError: 0.20, BaseConfidence: 65, ServiceType: ServiceBike,
	},
	{
		ServiceID: "oride", Name: "ORide",
		BaseFare: 300, PerKm: 105, PerMin: 15, MinFare: 480, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Bike", Multiplier: 1.0},
		},
		MarginOfError: 0.20, BaseConfidence: 62, ServiceType: ServiceBike,
	},
	{
		ServiceID: "shuttlers", Name: "Shuttlers",
		BaseFare: 200, PerKm: 65, PerMin: 10, MinFare: 350, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Shared", Multiplier: 1.0},
		},
		MarginOfError: 0.12, BaseConfidence: 80, ServiceType: ServiceBus,
	},
	{
		ServiceID: "plentywaka", Name: "Plentywaka",
		BaseFare: 220, PerKm: 70, PerMin: 10, MinFare: 380, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Shared", Multiplier: 1.0},
		},
		MarginOfError: 0.15, BaseConfidence: 72, ServiceType: ServiceBus,
	},
	{
		ServiceID: "treepz", Name: "Treepz",
		BaseFare: 250, PerKm: 75, PerMin: 12, MinFare: 400, BookingFee: 0,
		VehicleTypes: []VehicleCategory{
			{Type: "Shared", Multiplier: 1.0},
			{Type: "Charter", Multiplier: 2.2},
		},
		MarginOfError: 0.15, BaseConfidence: 70, ServiceType: ServiceBus,
	},
}

// Default builds the catalog from the shipped rate table.
func Default() (*Catalog, error) {
	return New(builtin)
}
