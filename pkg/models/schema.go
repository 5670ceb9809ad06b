package models

// JSON schema descriptions embedded in generation prompts. The field
// descriptions carry the generation constraints (formats, uniqueness hints)
// that the model is expected to honor.

// AddressSchema describes the Address wire format.
const AddressSchema = `{
  "title": "Address",
  "type": "object",
  "properties": {
    "address_line1": {"type": "string", "description": "Address Line 1, Required"},
    "address_line2": {"type": "string", "description": "Address Line 2, Optional"},
    "city": {"type": "string", "description": "Canada City Name"},
    "province": {"type": "string", "description": "Canada Province Name"},
    "postal_code": {"type": "string", "description": "Canada Postal Code"},
    "country": {"type": "string", "description": "Country Name", "default": "Canada"}
  },
  "required": ["address_line1", "city", "province", "postal_code", "country"]
}`

// CompanySchema describes the Company wire format.
const CompanySchema = `{
  "title": "Company",
  "type": "object",
  "properties": {
    "company_id": {"type": "string", "description": "Human readable Company ID, must be random 6 uppercase letters followed by random 3 numbers. Example: ABCDEF123"},
    "company_name": {"type": "string", "description": "Company name"},
    "phone_number": {"type": "string", "description": "Phone number in North American Numbering Plan (NANP) format. Example: +1 (416) 456-7890"},
    "email": {"type": "string", "description": "Email address, Example: example@example.com"},
    "website": {"type": "string", "description": "Company website URL, Example: https://www.example.com"}
  },
  "required": ["company_id", "company_name", "phone_number", "email", "website"]
}`

// InvoiceItemSchema describes the InvoiceItem wire format.
const InvoiceItemSchema = `{
  "title": "InvoiceItem",
  "type": "object",
  "properties": {
    "item_sku": {"type": "string", "description": "Stock Keeping Unit (SKU) number, must be random 6 uppercase letters followed by random 3 numbers. Example: ABCDEF123"},
    "item_info": {"type": "string", "description": "Item or service short information description"},
    "quantity": {"type": "integer", "description": "Quantity of items", "minimum": 1},
    "unit_price": {"type": "number", "description": "Price per unit, 2 decimal places"}
  },
  "required": ["item_sku", "item_info", "quantity", "unit_price"]
}`
