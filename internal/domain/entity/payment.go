package entity

import "strings"

// PaymentMethod identifica el canal de pago de una venta o gasto.
type PaymentMethod string

// Métodos de pago aceptados. El valor "mpesa" es el que viaja en la API;
// "mobile-money" se acepta como alias de entrada.
const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodMobileMoney PaymentMethod = "mpesa"
)

// ParsePaymentMethod normaliza el método recibido por la API. ok=false si no se reconoce.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return PaymentMethodCash, true
	case "mpesa", "m-pesa", "mobile-money", "mobile_money":
		return PaymentMethodMobileMoney, true
	}
	return "", false
}

// Payment es un tipo suma sellado: CashPayment o MobileMoneyPayment.
// Los campos opcionales (código de transacción, teléfono) solo existen en la variante móvil.
type Payment interface {
	Method() PaymentMethod
	isPayment()
}

// CashPayment pago en efectivo; no lleva datos adicionales.
type CashPayment struct{}

// Method implementa Payment.
func (CashPayment) Method() PaymentMethod { return PaymentMethodCash }
func (CashPayment) isPayment()            {}

// MobileMoneyPayment pago por M-Pesa. Code y Phone pueden venir vacíos.
type MobileMoneyPayment struct {
	Code  string // código de transacción M-Pesa (ej. "QA12B3C4D5")
	Phone string // teléfono del cliente
}

// Method implementa Payment.
func (MobileMoneyPayment) Method() PaymentMethod { return PaymentMethodMobileMoney }
func (MobileMoneyPayment) isPayment()            {}

// NewPayment construye la variante correspondiente al método. Para efectivo se ignoran code y phone.
func NewPayment(method PaymentMethod, code, phone string) Payment {
	if method == PaymentMethodMobileMoney {
		return MobileMoneyPayment{Code: strings.TrimSpace(code), Phone: strings.TrimSpace(phone)}
	}
	return CashPayment{}
}

// PaymentFields aplana un Payment a (método, código, teléfono) para persistencia y DTOs.
// Un Payment nil se trata como efectivo.
func PaymentFields(p Payment) (method PaymentMethod, code, phone string) {
	switch v := p.(type) {
	case MobileMoneyPayment:
		return PaymentMethodMobileMoney, v.Code, v.Phone
	case *MobileMoneyPayment:
		if v != nil {
			return PaymentMethodMobileMoney, v.Code, v.Phone
		}
	}
	return PaymentMethodCash, "", ""
}

// MethodOf devuelve el método de un Payment; nil cuenta como efectivo.
func MethodOf(p Payment) PaymentMethod {
	m, _, _ := PaymentFields(p)
	return m
}
