package product

import "sort"

// Pure request/entity/response conversions. Defaults are applied here
// (negotiable=true, ordering=0); business-rule validation stays in the
// service.

func toEntity(req Request) *Product {
	p := &Product{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		PricePerSqft: req.PricePerSqft,
		Negotiable:   true,
		Images:       make([]Image, 0, len(req.Images)),
	}
	if req.Negotiable != nil {
		p.Negotiable = *req.Negotiable
	}
	for _, img := range req.Images {
		p.Images = append(p.Images, toImageEntity(img))
	}
	return p
}

// applyRequest overwrites every mutable field of p, replacing the image
// list wholesale in submitted order.
func applyRequest(p *Product, req Request) {
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.PricePerSqft = req.PricePerSqft
	p.Negotiable = true
	if req.Negotiable != nil {
		p.Negotiable = *req.Negotiable
	}
	p.Images = make([]Image, 0, len(req.Images))
	for _, img := range req.Images {
		p.Images = append(p.Images, toImageEntity(img))
	}
}

func toImageEntity(req ImageRequest) Image {
	img := Image{
		URL:     req.URL,
		AltText: req.AltText,
	}
	if req.Ordering != nil {
		img.Ordering = *req.Ordering
	}
	return img
}

func toResponse(p *Product) *Response {
	if p == nil {
		return nil
	}
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{
			ID:       img.ID,
			URL:      img.URL,
			AltText:  img.AltText,
			Ordering: img.Ordering,
		})
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].Ordering < images[j].Ordering })
	return &Response{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		PricePerSqft: p.PricePerSqft,
		Negotiable:   p.Negotiable,
		Images:       images,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toResponseList(products []*Product) []Response {
	out := make([]Response, 0, len(products))
	for _, p := range products {
		out = append(out, *toResponse(p))
	}
	return out
}
