package backend

import (
	"matchclient/internal/entities"
)

func toMatchReply(r *matchStatusResponse) entities.MatchStatusReply {
	reply := entities.MatchStatusReply{
		Status: entities.MatchPhase(r.Status),
	}
	if r.RequestID != nil {
		reply.RequestID = *r.RequestID
	}
	if r.AssignmentID != nil {
		reply.AssignmentID = *r.AssignmentID
	}
	return reply
}

func toRequestRowList(rows []requestRowResponse) []entities.RequestRow {
	out := make([]entities.RequestRow, 0, len(rows))
	for i := range rows {
		out = append(out, toRequestRow(&rows[i]))
	}
	return out
}

func toRequestRow(r *requestRowResponse) entities.RequestRow {
	passengers := r.Passengers
	if passengers == nil {
		// rider-список отдает ту же колонку под именем seats
		passengers = r.Seats
	}
	return entities.RequestRow{
		ID:          r.ID,
		Status:      r.Status,
		Type:        entities.NormalizeRequestType(r.Type),
		FromAddress: r.FromAddress,
		ToAddress:   r.ToAddress,
		Passengers:  passengers,
		Notes:       r.Notes,
		WindowStart: r.WindowStart,
		WindowEnd:   r.WindowEnd,
		CreatedAt:   r.CreatedAt,
	}
}

func toOfferRowList(rows []offerRowResponse) []entities.OfferRow {
	out := make([]entities.OfferRow, 0, len(rows))
	for i := range rows {
		out = append(out, toOfferRow(&rows[i]))
	}
	return out
}

func toOfferRow(r *offerRowResponse) entities.OfferRow {
	return entities.OfferRow{
		ID:          r.ID,
		Status:      entities.OfferStatus(r.Status),
		RequestID:   r.RequestID,
		FromAddress: r.FromAddress,
		ToAddress:   r.ToAddress,
		WindowStart: r.WindowStart,
		WindowEnd:   r.WindowEnd,
		MinPrice:    r.MinPrice,
		Types:       r.Types,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toAssignmentDetail(r *assignmentDetailResponse) *entities.AssignmentDetail {
	if r == nil {
		return nil
	}

	detail := &entities.AssignmentDetail{
		AssignmentID:     r.AssignmentID,
		RequestID:        r.RequestID,
		Status:           entities.AssignmentStatus(r.Status),
		AssignedAt:       r.AssignedAt,
		PickedUpAt:       r.PickedUpAt,
		InTransitAt:      r.InTransitAt,
		CompletedAt:      r.CompletedAt,
		CancelledAt:      r.CancelledAt,
		FailedAt:         r.FailedAt,
		PaymentStatus:    r.PaymentStatus,
		AgreedPriceCents: r.AgreedPriceCents,
		OnchainTxHash:    r.OnchainTxHash,
		Driver: entities.DriverBrief{
			ID:          r.Driver.ID,
			FullName:    r.Driver.FullName,
			Phone:       r.Driver.Phone,
			Rating:      r.Driver.Rating,
			VehicleType: r.Driver.VehicleType,
			AvatarURL:   r.Driver.AvatarURL,
		},
		Request: entities.RequestSummary{
			ID:                 r.Request.ID,
			Type:               entities.NormalizeRequestType(r.Request.Type),
			FromAddress:        r.Request.FromAddress,
			ToAddress:          r.Request.ToAddress,
			Passengers:         r.Request.Passengers,
			PickupContactName:  r.Request.PickupContactName,
			PickupContactPhone: r.Request.PickupContactPhone,
			WindowStart:        r.Request.WindowStart,
			WindowEnd:          r.Request.WindowEnd,
			Notes:              r.Request.Notes,
		},
	}

	if r.Requester != nil {
		detail.Requester = &entities.RequesterBrief{
			ID:        r.Requester.ID,
			FullName:  r.Requester.FullName,
			Phone:     r.Requester.Phone,
			Rating:    r.Requester.Rating,
			AvatarURL: r.Requester.AvatarURL,
		}
	}
	if r.LastLocation != nil {
		detail.LastLocation = &entities.LastLocation{
			Lat:       r.LastLocation.Lat,
			Lng:       r.LastLocation.Lng,
			UpdatedAt: r.LastLocation.UpdatedAt,
		}
	}

	return detail
}

func toClearingResult(r *clearingResponse) entities.ClearingResult {
	result := entities.ClearingResult{
		Cleared: r.Cleared,
		Reason:  r.Reason,
	}
	if r.Matches != nil {
		result.Matches = *r.Matches
	}
	return result
}
