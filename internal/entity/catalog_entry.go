package entity

// CatalogEntry is one product discovered under the catalog root. All paths
// are relative to the scan root, forward-slash separated, so they stay
// valid links for clients regardless of the server's OS.
type CatalogEntry struct {
	BaseSerial   string  `json:"base_serial"`
	Brand        string  `json:"brand"`
	ProductType  *string `json:"product_type,omitempty"`
	CreationDate *string `json:"creation_date,omitempty"`
	FolderRel    string  `json:"folder_rel"`
	SourceRel    string  `json:"excel_rel"`
	VisualPDFRel *string `json:"visual_pdf_rel,omitempty"`
	VisualXLSRel *string `json:"visual_excel_rel,omitempty"`
}
