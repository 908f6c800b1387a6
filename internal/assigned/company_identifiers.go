package assigned

// https://bitbucket.org/bluetooth-SIG/public/src/main/assigned_numbers/company_identifiers/company_identifiers.yaml
var companyIdentifiers = map[uint16]string{
	0x0000: "Ericsson AB",
	0x0001: "Nokia Mobile Phones",
	0x0002: "Intel Corp.",
	0x0003: "IBM Corp.",
	0x0004: "Toshiba Corp.",
	0x0005: "3Com",
	0x0006: "Microsoft",
	0x0007: "Lucent",
	0x0008: "Motorola",
	0x0009: "Infineon Technologies AG",
	0x000A: "Qualcomm Technologies International, Ltd. (QTIL)",
	0x000B: "Silicon Wave",
	0x000C: "Digianswer A/S",
	0x000D: "Texas Instruments Inc.",
	0x000F: "Broadcom Corporation",
	0x001D: "Qualcomm",
	0x0030: "ST Microelectronics",
	0x0046: "MediaTek, Inc.",
	0x004C: "Apple, Inc.",
	0x0059: "Nordic Semiconductor ASA",
	0x0075: "Samsung Electronics Co. Ltd.",
	0x0078: "Nike, Inc.",
	0x0087: "Garmin International, Inc.",
	0x009E: "Bose Corporation",
	0x00E0: "Google",
	0x0131: "Cypress Semiconductor",
	0x015D: "Estimote, Inc.",
	0x0171: "Amazon.com Services, Inc.",
	0x02E5: "Espressif Systems (Shanghai) Co., Ltd.",
	0x038F: "Xiaomi Inc.",
	0x0499: "Ruuvi Innovations Ltd.",
}
