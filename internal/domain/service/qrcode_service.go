package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePickupCardQR generates a QR code PNG for a printed pickup
	// card: it encodes the address's kiosk code and street.
	GeneratePickupCardQR(kioskCode, street string) ([]byte, error)
}
