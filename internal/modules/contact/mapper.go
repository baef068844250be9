package contact

// Pure request/entity/response conversions; no I/O, no validation.

func toEntity(req Request) *Message {
	return &Message{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Body:      req.Message,
		ProductID: req.ProductID,
	}
}

func toResponse(m *Message) *Response {
	if m == nil {
		return nil
	}
	return &Response{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Body,
		ProductID: m.ProductID,
		CreatedAt: m.CreatedAt,
	}
}

func toResponseList(messages []*Message) []Response {
	out := make([]Response, 0, len(messages))
	for _, m := range messages {
		out = append(out, *toResponse(m))
	}
	return out
}
