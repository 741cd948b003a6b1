package memory

import (
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DemoProducts catálogo demo de bodega; espejo del seed SQL del store real.
func DemoProducts() []*entity.Product {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []*entity.Product{
		{
			Company: "P&G", Category: "Hair Care", Brand: "Head & Shoulders", BrandForm: "Shampoo 180ml",
			BarcodeMRP: "HS180-MRP145-4902430001234", Barcode: "4902430001234", UPC: "037000001234",
			MRP: d("145.00"), SLP: d("128.50"), RLP: d("120.00"), CountOfMRP: 24,
		},
		{
			Company: "P&G", Category: "Hair Care", Brand: "Pantene", BrandForm: "Shampoo 340ml",
			BarcodeMRP: "PT340-MRP290-4902430005678", Barcode: "4902430005678", UPC: "037000005678",
			MRP: d("290.00"), SLP: d("255.00"), RLP: d("238.00"), CountOfMRP: 12,
		},
		{
			Company: "P&G", Category: "Oral Care", Brand: "Oral-B", BrandForm: "Toothbrush Soft",
			BarcodeMRP: "OB-SOFT-MRP45-3014260012345", Barcode: "3014260012345", UPC: "300410012345",
			MRP: d("45.00"), SLP: d("38.00"), RLP: d("35.50"), CountOfMRP: 48,
		},
		{
			Company: "P&G", Category: "Fabric Care", Brand: "Ariel", BrandForm: "Powder 1kg",
			BarcodeMRP: "AR1KG-MRP199-8001090123456", Barcode: "8001090123456", UPC: "037000123456",
			MRP: d("199.00"), SLP: d("172.00"), RLP: d("160.00"), CountOfMRP: 30,
		},
		{
			Company: "P&G", Category: "Fabric Care", Brand: "Tide", BrandForm: "Powder 500g",
			BarcodeMRP: "TD500-MRP99-8001090654321", Barcode: "8001090654321", UPC: "037000654321",
			MRP: d("99.00"), SLP: d("86.00"), RLP: d("80.00"), CountOfMRP: 36,
		},
		{
			Company: "P&G", Category: "Grooming", Brand: "Gillette", BrandForm: "Mach3 Cartridge",
			BarcodeMRP: "GM3-MRP325-7702018123456", Barcode: "7702018123456", UPC: "047400123456",
			MRP: d("325.00"), SLP: d("289.00"), RLP: d("270.00"), CountOfMRP: 6,
		},
		{
			Company: "P&G", Category: "Health Care", Brand: "Vicks", BrandForm: "VapoRub 50ml",
			BarcodeMRP: "VR50-MRP155-4987176123456", Barcode: "4987176123456", UPC: "323900123456",
			MRP: d("155.00"), SLP: d("136.00"), RLP: d("128.00"), CountOfMRP: 18,
		},
		{
			Company: "P&G", Category: "Personal Care", Brand: "Safeguard", BrandForm: "Bar Soap 135g",
			BarcodeMRP: "SG135-MRP52-4902430998877", Barcode: "4902430998877", UPC: "037000998877",
			MRP: d("52.00"), SLP: d("44.00"), RLP: d("41.00"), CountOfMRP: 60,
		},
	}
}
