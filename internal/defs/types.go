// internal/defs/types.go
package defs

// HotspotDefinition holds the static data for one anatomical hotspot.
type HotspotDefinition struct {
	Label    string     `json:"label"`
	Position [3]float32 `json:"position"` // model space, Y up
}

// DefaultHotspots is the built-in body map, in registry order.
var DefaultHotspots = []HotspotDefinition{
	{Label: "Đầu & Não", Position: [3]float32{0, 1.85, 0.16}},
	{Label: "Mắt", Position: [3]float32{0, 1.8, 0.165}},
	{Label: "Mũi – Xoang", Position: [3]float32{0, 1.75, 0.18}},
	{Label: "Miệng – Lưỡi", Position: [3]float32{0, 1.7, 0.165}},
	{Label: "Họng – Cổ", Position: [3]float32{0, 1.6, 0.07}},
	{Label: "Ngực – Tim – Phổi", Position: [3]float32{0, 1.45, 0.14}},
	{Label: "Tim mạch – Mạch máu", Position: [3]float32{-0.1, 1.42, 0.155}},
	{Label: "Gan – Mật", Position: [3]float32{0, 1.25, 0.18}},
	{Label: "Hệ tiêu hóa (dạ dày, ruột)", Position: [3]float32{0, 1.15, 0.18}},
	{Label: "Thận – Đường tiết niệu", Position: [3]float32{0, 1, 0.18}},
	{Label: "Hệ sinh dục – Hậu môn", Position: [3]float32{0, 0.86, 0.175}},
	{Label: "Tay trái", Position: [3]float32{-0.3, 1.3, 0.04}},
	{Label: "Tay phải", Position: [3]float32{0.3, 1.3, 0.04}},
	{Label: "Chân trái", Position: [3]float32{-0.15, 0.6, 0.14}},
	{Label: "Chân phải", Position: [3]float32{0.15, 0.6, 0.14}},
	{Label: "Da – Móng – Phản ứng dị ứng", Position: [3]float32{0.1, 1.42, 0.155}},
	{Label: "Toàn thân – Không đặc hiệu", Position: [3]float32{-0.05, 1.32, 0.18}},
	{Label: "Triệu chứng nghiêm trọng toàn thân", Position: [3]float32{0.05, 1.32, 0.18}},
}
