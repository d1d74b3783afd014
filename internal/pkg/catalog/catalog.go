package catalog

import "github.com/samber/lo"

type DeviceClass string

const (
	ClassTemperature    DeviceClass = "temperature"
	ClassPower          DeviceClass = "power"
	ClassEnergy         DeviceClass = "energy"
	ClassPressure       DeviceClass = "pressure"
	ClassDuration       DeviceClass = "duration"
	ClassSignalStrength DeviceClass = "signal_strength"
)

func (dc DeviceClass) String() string {
	return string(dc)
}

// SensorDefinition is the presentation metadata for one raw parameter key.
type SensorDefinition struct {
	Name        string
	DeviceClass DeviceClass
	Unit        string
	Icon        string
}

// Well-known parameter keys the bridge treats specially.
const (
	KeyFlowTemp     = "GrantOutgoingTemp"
	KeyReturnTemp   = "GrantReturnTemp"
	KeyDeltaT       = "calc_delta_t"
	KeyWifiQuality  = "wifiQuality"
	KeyWifiStrength = "wifiStrength"
)

// SentinelNotConnected is the firmware convention for a physically
// disconnected sensor channel; readings carrying it are never published.
const SentinelNotConnected = 999.0

// WifiKeys live on the primary parameter document itself rather than in the
// curr map.
var WifiKeys = []string{KeyWifiQuality, KeyWifiStrength}

// Definitions maps raw econet24 parameter keys to presentation metadata.
// Covers Grant/ecoMAX heat pumps and the common econet24 parameter names,
// including the Polish aliases older controllers report.
var Definitions = map[string]SensorDefinition{
	// Grant heat pump
	"GrantOutgoingTemp":   {Name: "Heat Pump Flow Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"GrantReturnTemp":     {Name: "Heat Pump Return Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"GrantOutdoorTemp":    {Name: "Heat Pump Outdoor Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"GrantCompressorFreq": {Name: "Compressor Frequency", Unit: "Hz", Icon: "mdi:sine-wave"},
	"GrantPumpSpeed":      {Name: "Pump Speed", Unit: "RPM", Icon: "mdi:pump"},
	"GrantWorkState":      {Name: "Heat Pump Work State", Icon: "mdi:heat-pump"},
	"GrantFlow":           {Name: "Heat Pump Flow Rate", Unit: "L/min", Icon: "mdi:water-pump"},
	"GrantPower":          {Name: "Heat Pump Power", DeviceClass: ClassPower, Unit: "W", Icon: "mdi:flash"},
	"GrantCOP":            {Name: "Coefficient of Performance", Icon: "mdi:chart-line"},

	// Temperatures
	"TempWthr":      {Name: "Weather Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:weather-partly-cloudy"},
	"TempCWU":       {Name: "Hot Water Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:water-boiler"},
	"TempBuforUp":   {Name: "Buffer Tank Top Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:storage-tank"},
	"TempBuforDown": {Name: "Buffer Tank Bottom Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:storage-tank"},
	"TempClutch":    {Name: "Clutch Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempCircuit1":  {Name: "Circuit 1 Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempCircuit2":  {Name: "Circuit 2 Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempCircuit3":  {Name: "Circuit 3 Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempFeeder":    {Name: "Feeder Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempExhaust":   {Name: "Exhaust Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempRoom":      {Name: "Room Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:home-thermometer"},
	"TempOutdoor":   {Name: "Outdoor Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempReturn":    {Name: "Return Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempSupply":    {Name: "Supply Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempFlue":      {Name: "Flue Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"TempBoiler":    {Name: "Boiler Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"tempZasilanie": {Name: "Supply Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"tempPowrot":    {Name: "Return Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"tempZewn":      {Name: "Outdoor Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"tempPokojowa":  {Name: "Room Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:home-thermometer"},
	"tempCWU":       {Name: "Hot Water Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:water-boiler"},
	"tempBuforGora": {Name: "Buffer Top Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:storage-tank"},
	"tempBuforDol":  {Name: "Buffer Bottom Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:storage-tank"},

	// Setpoints and calculated targets
	"HeatSourceCalcPresetTemp": {Name: "Calculated Heating Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-auto"},
	"Circuit1SetTemp":          {Name: "Circuit 1 Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit2SetTemp":          {Name: "Circuit 2 Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"TempSetCircuit1":          {Name: "Circuit 1 Target Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"TempSetCircuit2":          {Name: "Circuit 2 Target Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"CalcTempCircuit1":         {Name: "Circuit 1 Calculated Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-auto"},
	"CalcTempCircuit2":         {Name: "Circuit 2 Calculated Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-auto"},
	"SetTempCO":                {Name: "Heating Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"SetTempCWU":               {Name: "Hot Water Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"CalcSetTempCO":            {Name: "Calculated Heating Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-auto"},
	"CalcSetTempCWU":           {Name: "Calculated Hot Water Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-auto"},
	"tempZadanaCO":             {Name: "Heating Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"tempZadanaCWU":            {Name: "Hot Water Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"tempWyliczonaCO":          {Name: "Calculated Heating Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-auto"},

	// Editable setpoints (from getDeviceEditableParams)
	"HDWTSetPoint":          {Name: "Hot Water Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"BuforsetPoint":         {Name: "Buffer Setpoint", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit1ComfortTemp":   {Name: "Circuit 1 Comfort Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit1EcoTemp":       {Name: "Circuit 1 Eco Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit1BaseTemp":      {Name: "Circuit 1 Base Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit2ComfortTemp":   {Name: "Circuit 2 Comfort Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit2EcoTemp":       {Name: "Circuit 2 Eco Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit2BaseTemp":      {Name: "Circuit 2 Base Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit3ComfortTemp":   {Name: "Circuit 3 Comfort Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit3EcoTemp":       {Name: "Circuit 3 Eco Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit3BaseTemp":      {Name: "Circuit 3 Base Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"Circuit1WorkState":      {Name: "Circuit 1 Work State", Icon: "mdi:radiator"},
	"Circuit2WorkState":      {Name: "Circuit 2 Work State", Icon: "mdi:radiator"},
	"Circuit3WorkState":      {Name: "Circuit 3 Work State", Icon: "mdi:radiator"},
	"Circuit1CurveRadiator":  {Name: "Circuit 1 Heating Curve", Icon: "mdi:chart-line"},
	"Circuit2CurveFloor":     {Name: "Circuit 2 Heating Curve", Icon: "mdi:chart-line"},
	"HeatingCooling":         {Name: "Heating/Cooling Mode", Icon: "mdi:hvac"},
	"SummerOn":               {Name: "Summer Mode On Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:weather-sunny"},
	"SummerOff":              {Name: "Summer Mode Off Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:weather-sunny"},
	"Circuit1thermostat":     {Name: "Circuit 1 Thermostat", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermostat"},
	"Circuit2thermostatTemp": {Name: "Circuit 2 Thermostat", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermostat"},
	"Circuit3thermostatTemp": {Name: "Circuit 3 Thermostat", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermostat"},

	// Flow rate
	"Flow":      {Name: "Current Flow Rate", Unit: "L/min", Icon: "mdi:water-pump"},
	"WaterFlow": {Name: "Water Flow Rate", Unit: "L/min", Icon: "mdi:water-pump"},
	"FlowRate":  {Name: "Flow Rate", Unit: "L/min", Icon: "mdi:water-pump"},
	"przeplyw":  {Name: "Flow Rate", Unit: "L/min", Icon: "mdi:water-pump"},

	// Power and energy
	"Power":           {Name: "Current Power", DeviceClass: ClassPower, Unit: "W", Icon: "mdi:flash"},
	"ElecPower":       {Name: "Electrical Power", DeviceClass: ClassPower, Unit: "W", Icon: "mdi:flash"},
	"CurrentPower":    {Name: "Current Power Usage", DeviceClass: ClassPower, Unit: "W", Icon: "mdi:flash"},
	"HeatingPower":    {Name: "Heating Power", DeviceClass: ClassPower, Unit: "kW", Icon: "mdi:flash"},
	"ThermalPower":    {Name: "Thermal Power", DeviceClass: ClassPower, Unit: "kW", Icon: "mdi:fire"},
	"EnergyTotal":     {Name: "Total Energy", DeviceClass: ClassEnergy, Unit: "kWh", Icon: "mdi:lightning-bolt"},
	"EnergyToday":     {Name: "Energy Today", DeviceClass: ClassEnergy, Unit: "kWh", Icon: "mdi:lightning-bolt"},
	"EnergyYesterday": {Name: "Energy Yesterday", DeviceClass: ClassEnergy, Unit: "kWh", Icon: "mdi:lightning-bolt"},
	"EnergyMonth":     {Name: "Energy This Month", DeviceClass: ClassEnergy, Unit: "kWh", Icon: "mdi:lightning-bolt"},
	"COP":             {Name: "Coefficient of Performance", Icon: "mdi:chart-line"},
	"moc":             {Name: "Power", DeviceClass: ClassPower, Unit: "W", Icon: "mdi:flash"},
	"mocGrzania":      {Name: "Heating Power", DeviceClass: ClassPower, Unit: "kW", Icon: "mdi:fire"},
	"energiaZuzycie":  {Name: "Energy Consumption", DeviceClass: ClassEnergy, Unit: "kWh", Icon: "mdi:lightning-bolt"},

	// Heat demand
	"HeatDemand":      {Name: "Heat Demand", Unit: "%", Icon: "mdi:fire"},
	"HeatingDemand":   {Name: "Heating Demand", Unit: "%", Icon: "mdi:fire"},
	"DemandCH":        {Name: "Central Heating Demand", Unit: "%", Icon: "mdi:fire"},
	"DemandCWU":       {Name: "Hot Water Demand", Unit: "%", Icon: "mdi:water-boiler"},
	"ModulationLevel": {Name: "Modulation Level", Unit: "%", Icon: "mdi:percent"},

	// Pressure
	"Pressure":       {Name: "System Pressure", DeviceClass: ClassPressure, Unit: "bar", Icon: "mdi:gauge"},
	"WaterPressure":  {Name: "Water Pressure", DeviceClass: ClassPressure, Unit: "bar", Icon: "mdi:gauge"},
	"SystemPressure": {Name: "System Pressure", DeviceClass: ClassPressure, Unit: "bar", Icon: "mdi:gauge"},
	"cisnienie":      {Name: "Pressure", DeviceClass: ClassPressure, Unit: "bar", Icon: "mdi:gauge"},

	// Pumps and actuators
	"PumpCH":        {Name: "Central Heating Pump", Icon: "mdi:pump"},
	"PumpCWU":       {Name: "Hot Water Pump", Icon: "mdi:pump"},
	"PumpCirc":      {Name: "Circulation Pump", Icon: "mdi:pump"},
	"PumpCircuit1":  {Name: "Circuit 1 Pump", Icon: "mdi:pump"},
	"PumpCircuit2":  {Name: "Circuit 2 Pump", Icon: "mdi:pump"},
	"Valve3Way":     {Name: "3-Way Valve Position", Unit: "%", Icon: "mdi:valve"},
	"MixerPosition": {Name: "Mixer Position", Unit: "%", Icon: "mdi:valve"},

	// Fan / blower
	"FanSpeed":    {Name: "Fan Speed", Unit: "%", Icon: "mdi:fan"},
	"FanPower":    {Name: "Fan Power", Unit: "%", Icon: "mdi:fan"},
	"BlowerSpeed": {Name: "Blower Speed", Unit: "RPM", Icon: "mdi:fan"},

	// Fuel
	"FuelLevel":       {Name: "Fuel Level", Unit: "%", Icon: "mdi:gas-station"},
	"FuelConsumption": {Name: "Fuel Consumption", Unit: "kg/h", Icon: "mdi:fire"},
	"FuelTotal":       {Name: "Total Fuel Used", Unit: "kg", Icon: "mdi:counter"},
	"FeederWork":      {Name: "Feeder Work Time", DeviceClass: ClassDuration, Unit: "s", Icon: "mdi:clock"},

	// Status / state
	"WorkMode":      {Name: "Work Mode", Icon: "mdi:state-machine"},
	"OperatingMode": {Name: "Operating Mode", Icon: "mdi:state-machine"},
	"State":         {Name: "System State", Icon: "mdi:state-machine"},
	"HeaterState":   {Name: "Heater State", Icon: "mdi:fire"},
	"AlarmState":    {Name: "Alarm State", Icon: "mdi:alert"},
	"ErrorCode":     {Name: "Error Code", Icon: "mdi:alert-circle"},

	// Runtime / statistics
	"RuntimeTotal":     {Name: "Total Runtime", DeviceClass: ClassDuration, Unit: "h", Icon: "mdi:clock"},
	"RuntimeToday":     {Name: "Runtime Today", DeviceClass: ClassDuration, Unit: "h", Icon: "mdi:clock"},
	"CompressorStarts": {Name: "Compressor Starts", Icon: "mdi:counter"},
	"BurnerStarts":     {Name: "Burner Starts", Icon: "mdi:counter"},

	// Connectivity
	"wifiQuality":  {Name: "WiFi Quality", Unit: "%", Icon: "mdi:wifi"},
	"wifiStrength": {Name: "WiFi Signal Strength", DeviceClass: ClassSignalStrength, Unit: "dBm", Icon: "mdi:wifi"},

	// Information params (numeric ids in getDeviceEditableParams)
	"info_compressor_hz":    {Name: "Compressor Frequency", Unit: "Hz", Icon: "mdi:sine-wave"},
	"info_fan_rpm":          {Name: "Fan Speed", Unit: "RPM", Icon: "mdi:fan"},
	"info_flow_rate":        {Name: "Current Flow Rate", Unit: "L/min", Icon: "mdi:water-pump"},
	"info_electrical_power": {Name: "Electrical Power", DeviceClass: ClassPower, Unit: "kW", Icon: "mdi:flash"},
	"info_pump_rpm":         {Name: "Circulation Pump Speed", Unit: "RPM", Icon: "mdi:pump"},
	"info_energy_wh":        {Name: "Heat Energy", DeviceClass: ClassEnergy, Unit: "Wh", Icon: "mdi:lightning-bolt"},
	"info_hp_target_temp":   {Name: "Heat Pump Target Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-check"},
	"info_hp_return_temp":   {Name: "Heat Pump Return Temperature", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer"},
	"info_cop":              {Name: "Current COP", Icon: "mdi:chart-line"},

	// Calculated sensors
	"calc_delta_t": {Name: "Delta T (Flow - Return)", DeviceClass: ClassTemperature, Unit: "°C", Icon: "mdi:thermometer-lines"},
}

// InformationParams maps the numeric-string ids in the editable-params
// informationParams block to derived sensor keys.
var InformationParams = map[string]string{
	"21":  "info_compressor_hz",
	"22":  "info_fan_rpm",
	"231": "info_flow_rate",
	"211": "info_electrical_power",
	"26":  "info_pump_rpm",
	"203": "info_energy_wh",
	"24":  "info_hp_target_temp",
	"25":  "info_hp_return_temp",
	"212": "info_cop",
}

// EditableAllowList names the setpoint-style editable parameters the bridge
// republishes; everything else in the editable document is ignored.
var EditableAllowList = []string{
	"HDWTSetPoint", "BuforsetPoint",
	"Circuit1ComfortTemp", "Circuit1EcoTemp", "Circuit1BaseTemp", "Circuit1WorkState",
	"Circuit2ComfortTemp", "Circuit2EcoTemp", "Circuit2BaseTemp", "Circuit2WorkState",
	"Circuit3ComfortTemp", "Circuit3EcoTemp", "Circuit3BaseTemp", "Circuit3WorkState",
	"Circuit1CurveRadiator", "Circuit2CurveFloor",
	"HeatingCooling", "SummerOn", "SummerOff",
}

// Lookup returns the definition for a raw parameter key. Unknown keys get a
// generated definition so discovery still occurs for unmapped sensors.
func Lookup(key string) SensorDefinition {
	if def, ok := Definitions[key]; ok {
		return def
	}
	return SensorDefinition{Name: key, Icon: "mdi:information"}
}

// IsEditableWanted reports whether an editable parameter name is on the
// republish allow-list.
func IsEditableWanted(name string) bool {
	return lo.Contains(EditableAllowList, name)
}
